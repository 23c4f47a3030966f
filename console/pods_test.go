package console_test

import (
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"code.cloudfoundry.org/lager/lagertest"

	"github.com/shanakama/smart-auto-scaler/console"
	"github.com/shanakama/smart-auto-scaler/fakes"
	"github.com/shanakama/smart-auto-scaler/models"
)

var _ = Describe("PodsController", func() {
	var (
		fakeClient *fakes.FakeScalerClient
		controller *console.PodsController

		pods   []models.Pod
		detail *models.PodDetail
	)

	BeforeEach(func() {
		fakeClient = &fakes.FakeScalerClient{}
		controller = console.NewPodsController(fakeClient, console.DefaultDetailCacheTTL, lagertest.NewTestLogger("pods"))

		pods = []models.Pod{
			{Name: "web-0", Namespace: "default", UID: "8e4c0c0d-0001", Owner: &models.PodOwner{Kind: "ReplicaSet", Name: "web-6d4cf56db6"}},
			{Name: "worker-1", Namespace: "jobs", UID: "8e4c0c0d-0002"},
		}
		detail = &models.PodDetail{
			Pod:       "default/web-0",
			Metrics:   &models.PodMetrics{CPUUsageCores: 0.25, MemoryUsageMB: 312},
			Resources: &models.PodResources{CPURequestsCores: 0.5, MemoryRequestsMB: 512},
		}

		fakeClient.ListPodsReturns(pods, nil)
		fakeClient.GetPodDetailReturns(detail, nil)
	})

	Describe("Load", func() {
		It("should list the pods", func() {
			Expect(controller.Load()).To(Succeed())

			view := controller.View()
			Expect(view.Loading).To(BeFalse())
			Expect(view.Error).To(BeEmpty())
			Expect(view.Pods).To(Equal(pods))
		})

		Context("when listing fails", func() {
			JustBeforeEach(func() {
				Expect(controller.Load()).To(Succeed())
				fakeClient.ListPodsReturns(nil, errors.New("connection refused"))
			})

			It("should record the error and keep the previous list", func() {
				Expect(controller.Load()).NotTo(Succeed())

				view := controller.View()
				Expect(view.Error).To(Equal("connection refused"))
				Expect(view.Pods).To(Equal(pods))
			})
		})
	})

	Describe("Detail", func() {
		It("should fetch the pod detail", func() {
			got, err := controller.Detail("default", "web-0")
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(detail))

			namespace, podName := fakeClient.GetPodDetailArgsForCall(0)
			Expect(namespace).To(Equal("default"))
			Expect(podName).To(Equal("web-0"))
		})

		It("should serve repeated requests from the cache", func() {
			_, err := controller.Detail("default", "web-0")
			Expect(err).NotTo(HaveOccurred())

			got, err := controller.Detail("default", "web-0")
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(detail))
			Expect(fakeClient.GetPodDetailCallCount()).To(Equal(1))
		})

		It("should fetch distinct pods separately", func() {
			_, err := controller.Detail("default", "web-0")
			Expect(err).NotTo(HaveOccurred())
			_, err = controller.Detail("jobs", "worker-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeClient.GetPodDetailCallCount()).To(Equal(2))
		})

		Context("when the cached entry has expired", func() {
			BeforeEach(func() {
				controller = console.NewPodsController(fakeClient, 10*time.Millisecond, lagertest.NewTestLogger("pods"))
			})

			It("should fetch again", func() {
				_, err := controller.Detail("default", "web-0")
				Expect(err).NotTo(HaveOccurred())

				Eventually(func() int {
					_, err := controller.Detail("default", "web-0")
					Expect(err).NotTo(HaveOccurred())
					return fakeClient.GetPodDetailCallCount()
				}).Should(BeNumerically(">", 1))
			})
		})

		Context("when the fetch fails", func() {
			BeforeEach(func() {
				fakeClient.GetPodDetailReturns(nil, errors.New("Pod default/web-0 not found or not running"))
			})

			It("should return the error without caching it", func() {
				_, err := controller.Detail("default", "web-0")
				Expect(err).To(MatchError("Pod default/web-0 not found or not running"))

				_, err = controller.Detail("default", "web-0")
				Expect(err).To(HaveOccurred())
				Expect(fakeClient.GetPodDetailCallCount()).To(Equal(2))
			})
		})

		Context("after a reload", func() {
			It("should refetch previously cached details", func() {
				_, err := controller.Detail("default", "web-0")
				Expect(err).NotTo(HaveOccurred())

				Expect(controller.Load()).To(Succeed())

				_, err = controller.Detail("default", "web-0")
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeClient.GetPodDetailCallCount()).To(Equal(2))
			})
		})
	})
})
