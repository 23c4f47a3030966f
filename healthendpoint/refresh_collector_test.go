package healthendpoint_test

import (
	"strings"

	. "github.com/shanakama/smart-auto-scaler/healthendpoint"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

var _ = Describe("RefreshCollector", func() {
	var (
		namespace string = "scalerctl"
		subSystem string = "dashboard"

		descChan    chan *prometheus.Desc
		collector   RefreshCollector
		refreshDesc = prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subSystem, "refresh_total"),
			"Number of dashboard refreshes",
			nil,
			nil,
		)
		failureDesc = prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subSystem, "refresh_failures_total"),
			"Number of failed dashboard refreshes",
			nil,
			nil,
		)
	)

	BeforeEach(func() {
		descChan = make(chan *prometheus.Desc, 10)
		collector = NewRefreshCollector(namespace, subSystem)
	})

	Context("Describe", func() {
		BeforeEach(func() {
			collector.Describe(descChan)
		})
		It("receives descriptions", func() {
			var desc1, desc2 *prometheus.Desc
			Expect(descChan).To(Receive(&desc1))
			Expect(descChan).To(Receive(&desc2))
			Expect([]prometheus.Desc{*desc1, *desc2}).To(ContainElement(*refreshDesc))
			Expect([]prometheus.Desc{*desc1, *desc2}).To(ContainElement(*failureDesc))
		})
	})

	Context("Collect", func() {
		BeforeEach(func() {
			collector.IncRefresh()
			collector.IncRefresh()
			collector.IncRefreshFailure()
		})
		It("receives the counted metrics", func() {
			numberReceived := testutil.CollectAndCount(collector, "scalerctl_dashboard_refresh_total", "scalerctl_dashboard_refresh_failures_total")
			Expect(numberReceived).Should(Equal(2))

			expected := `
				# HELP scalerctl_dashboard_refresh_total Number of dashboard refreshes
				# TYPE scalerctl_dashboard_refresh_total counter
				scalerctl_dashboard_refresh_total 2
				# HELP scalerctl_dashboard_refresh_failures_total Number of failed dashboard refreshes
				# TYPE scalerctl_dashboard_refresh_failures_total counter
				scalerctl_dashboard_refresh_failures_total 1
`
			err := testutil.CollectAndCompare(collector, strings.NewReader(expected))
			Expect(err).NotTo(HaveOccurred())
		})
	})
})
