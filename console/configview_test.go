package console_test

import (
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/lagertest"

	"github.com/shanakama/smart-auto-scaler/configvalidator"
	"github.com/shanakama/smart-auto-scaler/console"
	"github.com/shanakama/smart-auto-scaler/fakes"
	"github.com/shanakama/smart-auto-scaler/models"
	"github.com/shanakama/smart-auto-scaler/ui"
)

var _ = Describe("ConfigController", func() {
	var (
		fakeClient *fakes.FakeScalerClient
		fclock     *fakeclock.FakeClock
		controller *console.ConfigController

		conf   models.ScalerConfig
		update models.ConfigUpdate
	)

	message := func() string {
		return controller.View().Message
	}

	BeforeEach(func() {
		fakeClient = &fakes.FakeScalerClient{}
		fclock = fakeclock.NewFakeClock(time.Now())
		controller = console.NewConfigController(fakeClient, configvalidator.NewConfigValidator(), fclock, lagertest.NewTestLogger("config"))

		conf = models.DefaultScalerConfig()
		update = models.ConfigUpdate{
			DryRun:            false,
			ScaleFactor:       0.3,
			AutoScaleEnabled:  true,
			AutoScaleInterval: 60,
			ScalingCooldown:   45,
			Namespaces:        []string{"default", "jobs"},
		}

		fakeClient.GetConfigReturns(&conf, nil)
	})

	Describe("Load", func() {
		It("should fetch the configuration", func() {
			Expect(controller.Load()).To(Succeed())

			view := controller.View()
			Expect(view.Loading).To(BeFalse())
			Expect(view.Error).To(BeEmpty())
			Expect(view.Config).To(Equal(&conf))
		})

		Context("when fetching fails", func() {
			BeforeEach(func() {
				fakeClient.GetConfigReturns(nil, errors.New("connection refused"))
			})

			It("should record the error", func() {
				Expect(controller.Load()).NotTo(Succeed())
				Expect(controller.View().Error).To(Equal("connection refused"))
			})
		})
	})

	Describe("Save", func() {
		var saved models.ScalerConfig

		BeforeEach(func() {
			saved = conf
			saved.DryRun = update.DryRun
			saved.ScaleFactor = update.ScaleFactor
			saved.AutoScaleInterval = update.AutoScaleInterval
			saved.ScalingCooldown = update.ScalingCooldown
			saved.Namespaces = update.Namespaces
			fakeClient.UpdateConfigReturns(&saved, nil)
		})

		It("should post the update and store the returned configuration", func() {
			Expect(controller.Save(update)).To(Succeed())

			Expect(fakeClient.UpdateConfigCallCount()).To(Equal(1))
			Expect(fakeClient.UpdateConfigArgsForCall(0)).To(Equal(update))

			view := controller.View()
			Expect(view.Saving).To(BeFalse())
			Expect(view.Error).To(BeEmpty())
			Expect(view.Config).To(Equal(&saved))
		})

		It("should show the confirmation and clear it after a while", func() {
			Expect(controller.Save(update)).To(Succeed())
			Expect(message()).To(Equal(ui.ConfigSaved))

			Consistently(message).Should(Equal(ui.ConfigSaved))

			fclock.Increment(console.SavedMessageDuration)
			Eventually(message).Should(BeEmpty())
		})

		Context("when saving again before the confirmation clears", func() {
			It("should re-arm the message", func() {
				Expect(controller.Save(update)).To(Succeed())
				fclock.Increment(2 * time.Second)

				Expect(controller.Save(update)).To(Succeed())
				fclock.Increment(2 * time.Second)
				Consistently(message).Should(Equal(ui.ConfigSaved))

				fclock.Increment(time.Second)
				Eventually(message).Should(BeEmpty())
			})
		})

		Context("when the update fails validation", func() {
			BeforeEach(func() {
				update.ScaleFactor = 1.5
			})

			It("should reject the update without calling the backend", func() {
				err := controller.Save(update)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("invalid config update"))
				Expect(err.Error()).To(ContainSubstring("Must be less than or equal to 1"))
				Expect(fakeClient.UpdateConfigCallCount()).To(Equal(0))

				view := controller.View()
				Expect(view.Saving).To(BeFalse())
				Expect(view.Message).To(BeEmpty())
			})

			It("should keep the shown configuration", func() {
				Expect(controller.Load()).To(Succeed())
				Expect(controller.Save(update)).NotTo(Succeed())
				Expect(controller.View().Config).To(Equal(&conf))
			})
		})

		Context("when the backend rejects the update", func() {
			BeforeEach(func() {
				fakeClient.UpdateConfigReturns(nil, errors.New("scale_factor must be between 0 and 1"))
			})

			It("should record the error and keep the shown configuration", func() {
				Expect(controller.Load()).To(Succeed())

				err := controller.Save(update)
				Expect(err).To(MatchError("scale_factor must be between 0 and 1"))

				view := controller.View()
				Expect(view.Error).To(Equal("scale_factor must be between 0 and 1"))
				Expect(view.Config).To(Equal(&conf))
				Expect(view.Message).To(BeEmpty())
			})
		})
	})
})
