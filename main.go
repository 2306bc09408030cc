package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/udistrital/agua_mid/controllers/errorhandler"
	"github.com/udistrital/agua_mid/internal/metrics"
	"github.com/udistrital/agua_mid/internal/middlewares"
	internalservices "github.com/udistrital/agua_mid/internal/services"
	"github.com/udistrital/agua_mid/internal/watcher"
	_ "github.com/udistrital/agua_mid/routers"
	"github.com/udistrital/agua_mid/services"

	"github.com/beego/beego/v2/core/logs"
	beego "github.com/beego/beego/v2/server/web"
	cors "github.com/beego/beego/v2/server/web/filter/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logs.Info("sin archivo .env, se usan variables de entorno y app.conf")
	}
	cfg := services.GetConfig()

	beego.InsertFilter("*", beego.BeforeRouter, cors.Allow(&cors.Options{
		AllowOrigins:     []string{"http://localhost:4200"}, //orígenes permitidos
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Requested-With", "X-Request-Id", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-Id"},
		AllowCredentials: true,
	}))

	m := metrics.Default()
	beego.InsertFilter("*", beego.BeforeRouter, m.StartFilter, beego.WithReturnOnOutput(false))
	beego.InsertFilter("*", beego.FinishRouter, m.FinishFilter, beego.WithReturnOnOutput(false))
	beego.Handler("/metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))

	middlewares.UseAuth()
	beego.BConfig.RecoverFunc = errorhandler.RecoverPanic
	beego.BConfig.CopyRequestBody = true

	if beego.BConfig.RunMode == "dev" {
		beego.BConfig.WebConfig.DirectoryIndex = true
		beego.BConfig.WebConfig.StaticDir["/swagger"] = "swagger"
	}

	if cfg.WaterCheckEnabled {
		programas := internalservices.Default().Programas
		w := watcher.New(programas, m, cfg.WaterCheckSpec)
		programas.SetPendingCache(w)
		w.Start()
		go func() {
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
			<-sig
			w.Stop()
			os.Exit(0)
		}()
	}

	logs.Info("%s escuchando en :%d (gateway %s%s)", cfg.AppName, cfg.HTTPPort, cfg.GatewayBaseURL, cfg.GatewayPathPrefix)
	beego.Run()
}
