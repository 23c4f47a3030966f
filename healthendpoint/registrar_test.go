package healthendpoint_test

import (
	"github.com/shanakama/smart-auto-scaler/healthendpoint"

	"code.cloudfoundry.org/lager"
	"github.com/prometheus/client_golang/prometheus"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Registrar", func() {
	var (
		logger    lager.Logger = lager.NewLogger("registrar-test")
		registrar *spyRegistrar
		collector healthendpoint.RefreshCollector
	)

	BeforeEach(func() {
		registrar = newSpyRegistrar()
		collector = healthendpoint.NewRefreshCollector("scalerctl", "dashboard")
	})

	Context("with the default collectors", func() {
		BeforeEach(func() {
			healthendpoint.RegisterCollectors(registrar, []prometheus.Collector{collector}, true, logger)
		})
		It("registers process and go collectors alongside the custom ones", func() {
			Expect(registrar.collectors).To(HaveLen(3))
		})
	})

	Context("without the default collectors", func() {
		BeforeEach(func() {
			healthendpoint.RegisterCollectors(registrar, []prometheus.Collector{collector}, false, logger)
		})
		It("registers the custom collectors only", func() {
			Expect(registrar.collectors).To(HaveLen(1))
		})
	})

	Context("when a collector is registered twice", func() {
		It("does not panic", func() {
			promRegistry := prometheus.NewRegistry()
			healthendpoint.RegisterCollectors(promRegistry, []prometheus.Collector{collector}, false, logger)
			Expect(func() {
				healthendpoint.RegisterCollectors(promRegistry, []prometheus.Collector{collector}, false, logger)
			}).NotTo(Panic())
		})
	})
})

type spyRegistrar struct {
	prometheus.Registerer
	collectors []prometheus.Collector
}

func newSpyRegistrar() *spyRegistrar {
	return &spyRegistrar{}
}

func (s *spyRegistrar) Register(c prometheus.Collector) error {
	s.collectors = append(s.collectors, c)
	return nil
}
