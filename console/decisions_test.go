package console_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"code.cloudfoundry.org/lager/lagertest"

	"github.com/shanakama/smart-auto-scaler/console"
	"github.com/shanakama/smart-auto-scaler/fakes"
	"github.com/shanakama/smart-auto-scaler/models"
)

var _ = Describe("DecisionsController", func() {
	var (
		fakeClient *fakes.FakeScalerClient
		controller *console.DecisionsController
		decisions  []models.ScalingDecision
	)

	BeforeEach(func() {
		fakeClient = &fakes.FakeScalerClient{}
		controller = console.NewDecisionsController(fakeClient, lagertest.NewTestLogger("decisions"))

		oldAction := models.ActionIncrease
		oldConfidence := 0.93
		applied := true
		decisions = []models.ScalingDecision{
			{
				PodName:           "web-0",
				Namespace:         "default",
				Timestamp:         "2024-05-04T10:00:00Z",
				Action:            &oldAction,
				Confidence:        &models.Confidence{Overall: &oldConfidence},
				CurrentResources:  &models.ResourcePair{CPUCores: 0.5, MemoryMB: 512},
				ProposedResources: &models.ResourcePair{CPUCores: 0.6, MemoryMB: 512},
				Applied:           &applied,
				Reason:            "CPU saturated",
			},
			{
				PodName:   "worker-1",
				Namespace: "jobs",
				Timestamp: "2024-05-04T10:05:00Z",
				Predictions: &models.Predictions{
					CPUAction:    models.ActionMaintain,
					MemoryAction: models.ActionDecrease,
				},
				Confidence: &models.Confidence{CPU: float64Ptr(0.8), Memory: float64Ptr(0.9)},
			},
		}
		fakeClient.GetDecisionsReturns(decisions, nil)
	})

	Describe("Load", func() {
		It("should request the selected limit", func() {
			Expect(controller.Load()).To(Succeed())
			Expect(fakeClient.GetDecisionsCallCount()).To(Equal(1))
			Expect(fakeClient.GetDecisionsArgsForCall(0)).To(Equal(console.DefaultDecisionLimit))
		})

		It("should display newest decisions first", func() {
			Expect(controller.Load()).To(Succeed())

			view := controller.View()
			Expect(view.Decisions).To(HaveLen(2))
			Expect(view.Decisions[0].PodName).To(Equal("worker-1"))
			Expect(view.Decisions[1].PodName).To(Equal("web-0"))
		})

		It("should normalize both record shapes", func() {
			Expect(controller.Load()).To(Succeed())

			view := controller.View()
			newest := view.Decisions[0]
			Expect(newest.Action).To(Equal(models.ActionDecrease))
			Expect(newest.Confidence).To(BeNumerically("~", 0.85, 1e-9))

			oldest := view.Decisions[1]
			Expect(oldest.Action).To(Equal(models.ActionIncrease))
			Expect(oldest.Reason).To(Equal("CPU saturated"))
			Expect(oldest.ProposedCPUCores).To(Equal(0.6))
		})

		Context("when fetching fails", func() {
			JustBeforeEach(func() {
				Expect(controller.Load()).To(Succeed())
				fakeClient.GetDecisionsReturns(nil, errors.New("connection refused"))
			})

			It("should record the error and keep the previous table", func() {
				Expect(controller.Load()).NotTo(Succeed())

				view := controller.View()
				Expect(view.Error).To(Equal("connection refused"))
				Expect(view.Decisions).To(HaveLen(2))
			})
		})
	})

	Describe("SetLimit", func() {
		It("should accept the supported page sizes", func() {
			for _, limit := range []int{10, 25, 50, 100} {
				controller.SetLimit(limit)
				Expect(controller.View().Limit).To(Equal(limit))
			}
		})

		It("should fall back to the default for anything else", func() {
			controller.SetLimit(25)
			controller.SetLimit(33)
			Expect(controller.View().Limit).To(Equal(console.DefaultDecisionLimit))
		})

		It("should drive the next load", func() {
			controller.SetLimit(10)
			Expect(controller.Load()).To(Succeed())
			Expect(fakeClient.GetDecisionsArgsForCall(0)).To(Equal(10))
		})
	})
})

func float64Ptr(f float64) *float64 {
	return &f
}
