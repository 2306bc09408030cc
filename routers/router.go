package routers

import (
	"github.com/udistrital/agua_mid/controllers/errorhandler"
	internalcontrollers "github.com/udistrital/agua_mid/internal/controllers"

	beego "github.com/beego/beego/v2/server/web"
)

func init() {
	// Manejador de errores
	beego.ErrorController(&errorhandler.ErrorHandlerController{})

	// Las rutas fijas van antes de /:id
	beego.Router("/v1/programas", &internalcontrollers.ProgramasController{}, "get:GetAll;post:Post")
	beego.Router("/v1/programas/enriquecidos", &internalcontrollers.ProgramasController{}, "get:GetEnriquecidos")
	beego.Router("/v1/programas/agua", &internalcontrollers.ProgramasController{}, "get:GetAgua")
	beego.Router("/v1/programas/pendientes-agua", &internalcontrollers.ProgramasController{}, "get:GetPendientesAgua")
	beego.Router("/v1/programas/:id/estado", &internalcontrollers.ProgramasController{}, "put:PutEstado")
	beego.Router("/v1/programas/:id/agua", &internalcontrollers.ProgramasController{}, "put:PutAgua;delete:DeleteAgua")
	beego.Router("/v1/programas/:id", &internalcontrollers.ProgramasController{}, "get:GetOne;put:Put;delete:Delete")

	beego.Router("/v1/rutas", &internalcontrollers.RutasController{}, "get:GetAll;post:Post")
	beego.Router("/v1/rutas/activas", &internalcontrollers.RutasController{}, "get:GetActivas")
	beego.Router("/v1/rutas/:id/activar", &internalcontrollers.RutasController{}, "put:PutActivar")
	beego.Router("/v1/rutas/:id/desactivar", &internalcontrollers.RutasController{}, "put:PutDesactivar")
	beego.Router("/v1/rutas/:id", &internalcontrollers.RutasController{}, "get:GetOne;put:Put;delete:Delete")

	beego.Router("/v1/horarios", &internalcontrollers.HorariosController{}, "get:GetAll;post:Post")
	beego.Router("/v1/horarios/activos", &internalcontrollers.HorariosController{}, "get:GetActivos")
	beego.Router("/v1/horarios/referencias", &internalcontrollers.HorariosController{}, "get:GetReferencias")
	beego.Router("/v1/horarios/:id/activar", &internalcontrollers.HorariosController{}, "put:PutActivar")
	beego.Router("/v1/horarios/:id/desactivar", &internalcontrollers.HorariosController{}, "put:PutDesactivar")
	beego.Router("/v1/horarios/:id", &internalcontrollers.HorariosController{}, "get:GetOne;put:Put;delete:Delete")

	beego.Router("/v1/organizaciones/:id", &internalcontrollers.OrganizacionesController{}, "get:GetOne")

	beego.Router("/v1/reportes/programas", &internalcontrollers.ReportesController{}, "get:GetProgramas")
	beego.Router("/v1/reportes/rutas", &internalcontrollers.ReportesController{}, "get:GetRutas")
	beego.Router("/v1/reportes/horarios", &internalcontrollers.ReportesController{}, "get:GetHorarios")
}
