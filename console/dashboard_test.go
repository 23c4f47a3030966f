package console_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"code.cloudfoundry.org/lager/lagertest"

	"github.com/shanakama/smart-auto-scaler/console"
	"github.com/shanakama/smart-auto-scaler/fakes"
	"github.com/shanakama/smart-auto-scaler/models"
)

var _ = Describe("DashboardController", func() {
	var (
		fakeClient *fakes.FakeScalerClient
		logger     *lagertest.TestLogger
		controller *console.DashboardController

		statistics *models.Statistics
		autoscale  *models.AutoscaleStatus
		health     *models.HealthStatus
	)

	BeforeEach(func() {
		fakeClient = &fakes.FakeScalerClient{}
		logger = lagertest.NewTestLogger("dashboard")
		controller = console.NewDashboardController(fakeClient, logger)

		statistics = &models.Statistics{
			Overview: models.StatisticsOverview{
				TotalDecisions:   42,
				AppliedDecisions: 17,
				ScalingRate:      40.5,
				MonitoredPods:    6,
			},
			CPUActions:        models.ActionCounts{Decrease: 10, Maintain: 25, Increase: 7},
			MemoryActions:     models.ActionCounts{Decrease: 5, Maintain: 30, Increase: 7},
			AverageConfidence: models.ConfidencePair{CPU: 0.91, Memory: 0.88},
			System:            models.SystemInfo{DryRun: true, CooldownMinutes: 30, ScaleFactor: 0.2},
		}
		autoscale = &models.AutoscaleStatus{
			Enabled:         true,
			Running:         true,
			IntervalSeconds: 30,
			ThreadAlive:     true,
		}
		health = &models.HealthStatus{
			Status:    "healthy",
			Service:   "dqn-scaler",
			Timestamp: "2024-05-04T10:00:00Z",
		}

		fakeClient.GetStatisticsReturns(statistics, nil)
		fakeClient.GetAutoscaleStatusReturns(autoscale, nil)
		fakeClient.CheckHealthReturns(health, nil)
	})

	Describe("Load", func() {
		Context("when the backend answers", func() {
			It("should populate the view", func() {
				err := controller.Load()
				Expect(err).NotTo(HaveOccurred())

				view := controller.View()
				Expect(view.Loading).To(BeFalse())
				Expect(view.Error).To(BeEmpty())
				Expect(view.Statistics).To(Equal(statistics))
				Expect(view.Autoscale).To(Equal(autoscale))
				Expect(view.Health).To(Equal(health))
			})
		})

		Context("when fetching statistics fails", func() {
			BeforeEach(func() {
				fakeClient.GetStatisticsReturns(nil, errors.New("connection refused"))
			})

			It("should record the error", func() {
				err := controller.Load()
				Expect(err).To(MatchError("connection refused"))

				view := controller.View()
				Expect(view.Loading).To(BeFalse())
				Expect(view.Error).To(Equal("connection refused"))
				Expect(logger.Buffer()).To(gbytes.Say("failed-to-fetch-statistics"))
			})

			It("should not fetch autoscale status or health", func() {
				controller.Load()
				Expect(fakeClient.GetAutoscaleStatusCallCount()).To(Equal(0))
				Expect(fakeClient.CheckHealthCallCount()).To(Equal(0))
			})
		})

		Context("when fetching the autoscale status fails", func() {
			BeforeEach(func() {
				fakeClient.GetAutoscaleStatusReturns(nil, errors.New("boom"))
			})

			It("should record the error", func() {
				err := controller.Load()
				Expect(err).To(MatchError("boom"))
				Expect(controller.View().Error).To(Equal("boom"))
				Expect(logger.Buffer()).To(gbytes.Say("failed-to-fetch-autoscale-status"))
			})
		})

		Context("when fetching health fails", func() {
			BeforeEach(func() {
				fakeClient.CheckHealthReturns(nil, errors.New("boom"))
			})

			It("should record the error", func() {
				err := controller.Load()
				Expect(err).To(MatchError("boom"))
				Expect(logger.Buffer()).To(gbytes.Say("failed-to-fetch-health"))
			})
		})

		Context("when a reload fails after a successful load", func() {
			JustBeforeEach(func() {
				Expect(controller.Load()).To(Succeed())
				fakeClient.GetStatisticsReturns(nil, errors.New("backend restarting"))
				Expect(controller.Load()).NotTo(Succeed())
			})

			It("should keep the previously loaded data", func() {
				view := controller.View()
				Expect(view.Error).To(Equal("backend restarting"))
				Expect(view.Statistics).To(Equal(statistics))
				Expect(view.Autoscale).To(Equal(autoscale))
				Expect(view.Health).To(Equal(health))
			})
		})
	})

	Describe("RefreshStatistics", func() {
		JustBeforeEach(func() {
			Expect(controller.Load()).To(Succeed())
		})

		It("should update statistics only", func() {
			refreshed := &models.Statistics{
				Overview: models.StatisticsOverview{TotalDecisions: 43, AppliedDecisions: 18, ScalingRate: 41.8, MonitoredPods: 6},
			}
			fakeClient.GetStatisticsReturns(refreshed, nil)

			Expect(controller.RefreshStatistics()).To(Succeed())

			view := controller.View()
			Expect(view.Statistics).To(Equal(refreshed))
			Expect(view.Autoscale).To(Equal(autoscale))
			Expect(view.Health).To(Equal(health))
		})

		Context("when the refresh fails", func() {
			BeforeEach(func() {
				fakeClient.GetStatisticsReturnsOnCall(1, nil, errors.New("request timed out"))
			})

			It("should keep the view untouched and log the failure", func() {
				err := controller.RefreshStatistics()
				Expect(err).To(MatchError("request timed out"))

				view := controller.View()
				Expect(view.Error).To(BeEmpty())
				Expect(view.Statistics).To(Equal(statistics))
				Expect(logger.Buffer()).To(gbytes.Say("failed-to-refresh-statistics"))
			})
		})
	})
})
