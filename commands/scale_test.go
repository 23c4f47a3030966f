package commands

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/shanakama/smart-auto-scaler/models"
)

var _ = Describe("Rendering scale-all executions", func() {
	Describe("the action columns", func() {
		It("prefers the nested action pair of a dry run", func() {
			cpu, memory := executionActions(models.ScaleExecution{
				CPUAction:    models.ActionMaintain,
				MemoryAction: models.ActionMaintain,
				Actions: &models.ActionPair{
					CPU:    models.ActionIncrease,
					Memory: models.ActionDecrease,
				},
			})
			Expect(cpu).To(Equal("INCREASE"))
			Expect(memory).To(Equal("DECREASE"))
		})

		It("falls back to the flat actions", func() {
			cpu, memory := executionActions(models.ScaleExecution{
				CPUAction:    models.ActionIncrease,
				MemoryAction: models.ActionMaintain,
			})
			Expect(cpu).To(Equal("INCREASE"))
			Expect(memory).To(Equal("MAINTAIN"))
		})
	})

	Describe("the detail column", func() {
		It("shows the error of a failed execution", func() {
			detail := executionDetail(models.ScaleExecution{
				Status:  models.ScaleStatusError,
				Error:   "pod not found",
				Message: "ignored",
			})
			Expect(detail).To(Equal("pod not found"))
		})

		It("shows the reason of a skipped execution", func() {
			detail := executionDetail(models.ScaleExecution{
				Status: models.ScaleStatusSkipped,
				Reason: "cooldown active",
			})
			Expect(detail).To(Equal("cooldown active"))
		})

		It("shows the message otherwise", func() {
			detail := executionDetail(models.ScaleExecution{
				Status:  models.ScaleStatusSuccess,
				Message: "scaled to 0.6 cores",
			})
			Expect(detail).To(Equal("scaled to 0.6 cores"))
		})
	})
})
