package cmd

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"roteirizador/infra"
	_midlleware "roteirizador/infra/middleware"
)

func StartAPI(ctx context.Context, container *infra.ContainerDI) {
	e := echo.New()

	go func() {
		for {
			select {
			case <-ctx.Done():
				if err := e.Shutdown(ctx); err != nil {
					panic(err)
				}
				return
			default:
				time.Sleep(1 * time.Second)
			}
		}
	}()

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowMethods: middleware.DefaultCORSConfig.AllowMethods,
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.POST("/login", container.LoginHandler.Login)
	e.POST("/create", container.LoginHandler.CreateUser)

	// O link do compartilhamento é aberto pelo motorista sem conta: o token é a credencial.
	e.GET("/compartilhamento/:token", container.HandlerCompartilhamento.RotaCompartilhadaHandler)
	e.PUT("/compartilhamento/:token/aceite", container.HandlerCompartilhamento.ResponderAceiteHandler)

	e.POST("/duplicatas/detectar", container.HandlerDuplicatas.DetectarDuplicatasHandler, _midlleware.CheckAuthorization)
	e.POST("/duplicatas/sugerir", container.HandlerDuplicatas.SugerirMesclagemHandler, _midlleware.CheckAuthorization)
	e.PUT("/duplicatas/revisar", container.HandlerDuplicatas.RevisarDuplicatasHandler, _midlleware.CheckAuthorization)

	e.POST("/roteirizador/otimizar", container.HandlerRoteirizador.OtimizarRotaHandler, _midlleware.CheckAuthorization)

	e.GET("/rotas", container.HandlerRotas.ListarRotasHandler, _midlleware.CheckAuthorization)
	e.POST("/rotas/salvar", container.HandlerRotas.SalvarRotaHandler, _midlleware.CheckAuthorization)
	e.PUT("/rotas/status", container.HandlerRotas.AtualizarStatusHandler, _midlleware.CheckAuthorization)
	e.POST("/rotas/versoes", container.HandlerRotas.CriarVersaoHandler, _midlleware.CheckAuthorization)
	e.GET("/rotas/:id/versoes", container.HandlerRotas.HistoricoVersoesHandler, _midlleware.CheckAuthorization)
	e.GET("/rotas/:id", container.HandlerRotas.ObterRotaHandler, _midlleware.CheckAuthorization)
	e.DELETE("/rotas/:id", container.HandlerRotas.DeletarRotaHandler, _midlleware.CheckAuthorization)

	e.POST("/importacoes", container.HandlerImportacao.ImportarViagensHandler, _midlleware.CheckAuthorization)
	e.GET("/importacoes", container.HandlerImportacao.HistoricoImportacoesHandler, _midlleware.CheckAuthorization)

	e.POST("/compartilhamentos", container.HandlerCompartilhamento.CompartilharRotaHandler, _midlleware.CheckAuthorization)
	e.POST("/compartilhamentos/reenviar", container.HandlerCompartilhamento.ReenviarCompartilhamentoHandler, _midlleware.CheckAuthorization)

	e.POST("/motoristas", container.HandlerMotoristas.CreateMotoristaHandler, _midlleware.CheckAuthorization)
	e.PUT("/motoristas", container.HandlerMotoristas.UpdateMotoristaHandler, _midlleware.CheckAuthorization)
	e.GET("/motoristas", container.HandlerMotoristas.GetMotoristasHandler, _midlleware.CheckAuthorization)
	e.GET("/motoristas/:id", container.HandlerMotoristas.GetMotoristaByIdHandler, _midlleware.CheckAuthorization)
	e.DELETE("/motoristas/:id", container.HandlerMotoristas.DeleteMotoristaHandler, _midlleware.CheckAuthorization)

	e.POST("/veiculos", container.HandlerVeiculos.CreateVeiculoHandler, _midlleware.CheckAuthorization)
	e.PUT("/veiculos", container.HandlerVeiculos.UpdateVeiculoHandler, _midlleware.CheckAuthorization)
	e.GET("/veiculos", container.HandlerVeiculos.GetVeiculosHandler, _midlleware.CheckAuthorization)
	e.GET("/veiculos/:id", container.HandlerVeiculos.GetVeiculoByIdHandler, _midlleware.CheckAuthorization)
	e.DELETE("/veiculos/:id", container.HandlerVeiculos.DeleteVeiculoHandler, _midlleware.CheckAuthorization)

	e.GET("/dashboard", container.HandlerDashboard.GetDashboardHandler, _midlleware.CheckAuthorization)

	e.GET("/ws", container.WsHandler.HandleWs, _midlleware.CheckAuthorization)

	e.Logger.Fatal(e.Start(container.Config.ServerPort))
}
