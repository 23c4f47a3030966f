package routes

import (
	"github.com/gorilla/mux"

	"net/http"
)

const (
	HealthPath           = "/health"
	CheckHealthRouteName = "CheckHealth"

	ConfigPath            = "/config"
	GetConfigRouteName    = "GetConfig"
	UpdateConfigRouteName = "UpdateConfig"

	PodsPath          = "/pods"
	ListPodsRouteName = "ListPods"

	PodDetailPath         = "/pods/{namespace}/{podname}"
	GetPodDetailRouteName = "GetPodDetail"

	ScalePodPath      = "/scale/pod/{namespace}/{podname}"
	ScalePodRouteName = "ScalePod"

	ScaleAllPath      = "/scale/all"
	ScaleAllRouteName = "ScaleAll"

	DecisionsPath         = "/decisions"
	GetDecisionsRouteName = "GetDecisions"

	StatisticsPath         = "/statistics"
	GetStatisticsRouteName = "GetStatistics"

	AutoscaleStartPath      = "/autoscale/start"
	StartAutoscaleRouteName = "StartAutoscale"

	AutoscaleStopPath      = "/autoscale/stop"
	StopAutoscaleRouteName = "StopAutoscale"

	AutoscaleStatusPath         = "/autoscale/status"
	GetAutoscaleStatusRouteName = "GetAutoscaleStatus"

	ModelInfoPath         = "/model/info"
	GetModelInfoRouteName = "GetModelInfo"

	ResizePodPath      = "/api/namespaces/{namespace}/pods/{podname}/resize"
	ResizePodRouteName = "ResizePod"
)

type ScalerRoute struct {
	scalerRoutes *mux.Router
}

var scalerRouteInstance *ScalerRoute = newRouters()

func newRouters() *ScalerRoute {
	instance := &ScalerRoute{
		scalerRoutes: mux.NewRouter(),
	}

	instance.scalerRoutes.Path(HealthPath).Methods(http.MethodGet).Name(CheckHealthRouteName)
	instance.scalerRoutes.Path(ConfigPath).Methods(http.MethodGet).Name(GetConfigRouteName)
	instance.scalerRoutes.Path(ConfigPath).Methods(http.MethodPost).Name(UpdateConfigRouteName)
	instance.scalerRoutes.Path(PodsPath).Methods(http.MethodGet).Name(ListPodsRouteName)
	instance.scalerRoutes.Path(PodDetailPath).Methods(http.MethodGet).Name(GetPodDetailRouteName)
	instance.scalerRoutes.Path(ScalePodPath).Methods(http.MethodPost).Name(ScalePodRouteName)
	instance.scalerRoutes.Path(ScaleAllPath).Methods(http.MethodPost).Name(ScaleAllRouteName)
	instance.scalerRoutes.Path(DecisionsPath).Methods(http.MethodGet).Name(GetDecisionsRouteName)
	instance.scalerRoutes.Path(StatisticsPath).Methods(http.MethodGet).Name(GetStatisticsRouteName)
	instance.scalerRoutes.Path(AutoscaleStartPath).Methods(http.MethodPost).Name(StartAutoscaleRouteName)
	instance.scalerRoutes.Path(AutoscaleStopPath).Methods(http.MethodPost).Name(StopAutoscaleRouteName)
	instance.scalerRoutes.Path(AutoscaleStatusPath).Methods(http.MethodGet).Name(GetAutoscaleStatusRouteName)
	instance.scalerRoutes.Path(ModelInfoPath).Methods(http.MethodGet).Name(GetModelInfoRouteName)
	instance.scalerRoutes.Path(ResizePodPath).Methods(http.MethodPost).Name(ResizePodRouteName)

	return instance

}
func ScalerRoutes() *mux.Router {
	return scalerRouteInstance.scalerRoutes
}
