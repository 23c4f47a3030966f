package console_test

import (
	"errors"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/tedsuo/ifrit"
	ginkgomon "github.com/tedsuo/ifrit/ginkgomon_v2"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/lagertest"

	"github.com/shanakama/smart-auto-scaler/console"
	"github.com/shanakama/smart-auto-scaler/fakes"
	"github.com/shanakama/smart-auto-scaler/healthendpoint"
	"github.com/shanakama/smart-auto-scaler/models"
)

var _ = Describe("DashboardRefresher", func() {
	var (
		proc       ifrit.Process
		fclock     *fakeclock.FakeClock
		buffer     *gbytes.Buffer
		fakeClient *fakes.FakeScalerClient
		dashboard  *console.DashboardController
		collector  healthendpoint.RefreshCollector
		refresher  *console.DashboardRefresher
		renders    int32
	)

	BeforeEach(func() {
		logger := lagertest.NewTestLogger("refresher-test")
		buffer = logger.Buffer()
		fclock = fakeclock.NewFakeClock(time.Now())

		fakeClient = &fakes.FakeScalerClient{}
		fakeClient.GetStatisticsReturns(&models.Statistics{}, nil)
		dashboard = console.NewDashboardController(fakeClient, logger)
		collector = healthendpoint.NewRefreshCollector("scalerctl", "dashboard")
		renders = 0
		refresher = console.NewDashboardRefresher(dashboard, collector, fclock, logger, func() {
			atomic.AddInt32(&renders, 1)
		})
	})

	JustBeforeEach(func() {
		proc = ifrit.Invoke(refresher)
		Eventually(buffer).Should(gbytes.Say("started"))
	})

	AfterEach(func() {
		ginkgomon.Kill(proc)
		Eventually(proc.Wait()).Should(Receive(BeNil()))
	})

	Context("when watching", func() {
		It("refreshes immediately and then after every interval", func() {
			Eventually(fakeClient.GetStatisticsCallCount).Should(Equal(1))

			fclock.Increment(console.RefreshInterval)
			Eventually(fakeClient.GetStatisticsCallCount).Should(Equal(2))

			fclock.Increment(console.RefreshInterval)
			Eventually(fakeClient.GetStatisticsCallCount).Should(Equal(3))
		})

		It("renders after every refresh", func() {
			Eventually(func() int32 { return atomic.LoadInt32(&renders) }).Should(Equal(int32(1)))

			fclock.Increment(console.RefreshInterval)
			Eventually(func() int32 { return atomic.LoadInt32(&renders) }).Should(Equal(int32(2)))
		})

		Context("when a refresh fails", func() {
			BeforeEach(func() {
				fakeClient.GetStatisticsReturns(nil, errors.New("connection refused"))
			})

			It("keeps ticking and still renders", func() {
				Eventually(func() int32 { return atomic.LoadInt32(&renders) }).Should(Equal(int32(1)))

				fclock.Increment(console.RefreshInterval)
				Eventually(fakeClient.GetStatisticsCallCount).Should(Equal(2))
				Eventually(func() int32 { return atomic.LoadInt32(&renders) }).Should(Equal(int32(2)))
			})
		})
	})

	Context("when an interrupt is sent", func() {
		It("should stop", func() {
			fclock.Increment(console.RefreshInterval)
			Eventually(fakeClient.GetStatisticsCallCount).Should(Equal(2))

			ginkgomon.Kill(proc)
			Eventually(proc.Wait()).Should(Receive(BeNil()))

			Eventually(buffer).Should(gbytes.Say("stopped"))

			fclock.Increment(console.RefreshInterval)
			Consistently(fakeClient.GetStatisticsCallCount).Should(Equal(2))
		})
	})
})
