package handler

import (
	"net/http"

	"github.com/vfg2006/marketing-warehouse-api/internal/api/handler/router"
	"github.com/vfg2006/marketing-warehouse-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketing-warehouse-api/internal/usecases/dimensioning"
	"github.com/vfg2006/marketing-warehouse-api/internal/usecases/facts"
	"github.com/vfg2006/marketing-warehouse-api/internal/usecases/geomapping"
	"github.com/vfg2006/marketing-warehouse-api/internal/usecases/reconciling"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/users",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:    "/v1/users/:id",
			Method:  http.MethodGet,
			Handler: GetUser(service),
		},
		{
			Path:    "/v1/users/:id",
			Method:  http.MethodDelete,
			Handler: DeleteUser(service),
		},
	}
}

func Geo(service geomapping.GeoMapper) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/geo/dma/resolve",
			Method:  http.MethodGet,
			Handler: ResolveDMA(service),
		},
		{
			Path:    "/v1/geo/dma/mappings",
			Method:  http.MethodPost,
			Handler: AddDMAMapping(service),
		},
		{
			Path:    "/v1/geo/dma/remap",
			Method:  http.MethodPost,
			Handler: RemapCity(service),
		},
		{
			Path:    "/v1/geo/dma/audit",
			Method:  http.MethodGet,
			Handler: AuditDMAShares(service),
		},
		{
			Path:    "/v1/geo/postal/resolve",
			Method:  http.MethodGet,
			Handler: ResolvePostal(service),
		},
		{
			Path:    "/v1/geo/postal/mappings",
			Method:  http.MethodPost,
			Handler: RegisterPostalMapping(service),
		},
	}
}

func Facts(service facts.FactRecorder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/facts/marketing",
			Method:  http.MethodPost,
			Handler: RecordMarketingFact(service),
		},
		{
			Path:    "/v1/facts/shopify",
			Method:  http.MethodPost,
			Handler: RecordShopifyFact(service),
		},
		{
			Path:    "/v1/facts/model-results",
			Method:  http.MethodPost,
			Handler: RecordModelResult(service),
		},
	}
}

func Staging(service reconciling.Reconciler) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/staging/shopify",
			Method:  http.MethodPost,
			Handler: IngestStagingBatch(service),
		},
		{
			Path:    "/v1/reconciliation/run",
			Method:  http.MethodPost,
			Handler: RunReconciliation(service),
		},
		{
			Path:    "/v1/ingestions",
			Method:  http.MethodGet,
			Handler: ListIngestions(service),
		},
	}
}

func Dimensions(service dimensioning.Dimensioner) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/metrics/availability",
			Method:  http.MethodPut,
			Handler: SetMetricAvailability(service),
		},
		{
			Path:    "/v1/metrics/availability",
			Method:  http.MethodGet,
			Handler: ListMetricAvailability(service),
		},
		{
			Path:    "/v1/geo/dma/labels",
			Method:  http.MethodPost,
			Handler: RegisterDMALabel(service),
		},
		{
			Path:    "/v1/calendar/populate",
			Method:  http.MethodPost,
			Handler: PopulateCalendar(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
