package infra

import (
	"database/sql"
	"time"

	"roteirizador/infra/database"
	"roteirizador/infra/database/db_postgresql"
	"roteirizador/infra/token"
	"roteirizador/internal/compartilhamento"
	"roteirizador/internal/dashboard"
	"roteirizador/internal/duplicatas"
	"roteirizador/internal/importacao"
	"roteirizador/internal/login"
	"roteirizador/internal/motoristas"
	"roteirizador/internal/rotas_otimizadas"
	"roteirizador/internal/roteirizador"
	"roteirizador/internal/veiculos"
	"roteirizador/internal/ws"
	"roteirizador/pkg"
	"roteirizador/pkg/cache"
)

type ContainerDI struct {
	Config                     Config
	ConnDB                     *sql.DB
	PasetoMaker                *token.Maker
	CacheEnderecos             *cache.Cache
	Hub                        *ws.Hub
	RepositoryDuplicatas       *duplicatas.Repository
	ServiceDuplicatas          *duplicatas.Service
	HandlerDuplicatas          *duplicatas.Handler
	ServiceRoteirizador        *roteirizador.Service
	HandlerRoteirizador        *roteirizador.Handler
	RepositoryRotas            *rotas_otimizadas.Repository
	ServiceRotas               *rotas_otimizadas.Service
	HandlerRotas               *rotas_otimizadas.Handler
	RepositoryImportacao       *importacao.Repository
	ServiceImportacao          *importacao.Service
	HandlerImportacao          *importacao.Handler
	RepositoryCompartilhamento *compartilhamento.Repository
	ServiceCompartilhamento    *compartilhamento.Service
	HandlerCompartilhamento    *compartilhamento.Handler
	RepositoryMotoristas       *motoristas.Repository
	ServiceMotoristas          *motoristas.Service
	HandlerMotoristas          *motoristas.Handler
	RepositoryVeiculos         *veiculos.Repository
	ServiceVeiculos            *veiculos.Service
	HandlerVeiculos            *veiculos.Handler
	RepositoryDashboard        *dashboard.Repository
	ServiceDashboard           *dashboard.Service
	HandlerDashboard           *dashboard.Handler
	LoginRepository            *login.Repository
	LoginService               *login.Service
	LoginHandler               *login.Handler
	WsHandler                  *ws.Handler
}

func NewContainerDI(config Config) *ContainerDI {
	container := &ContainerDI{Config: config}
	container.db()
	container.buildPkg()
	container.buildRepository()
	container.buildService()
	container.buildHandler()
	return container
}

func (c *ContainerDI) db() {
	dbConfig := database.Config{
		Host:        c.Config.DBHost,
		Port:        c.Config.DBPort,
		User:        c.Config.DBUser,
		Password:    c.Config.DBPassword,
		Database:    c.Config.DBDatabase,
		SSLMode:     c.Config.DBSSLMode,
		Driver:      c.Config.DBDriver,
		Environment: c.Config.Environment,
	}
	c.ConnDB = db_postgresql.NewConnection(&dbConfig)
}

func (c *ContainerDI) buildPkg() {
	maker, _ := token.NewPasetoMaker(c.Config.SignatureToken)
	c.PasetoMaker = &maker
	c.CacheEnderecos = cache.New(10 * time.Minute)
	c.Hub = ws.NewHub()
	go c.Hub.Run()
	pkg.InitRedis()
}

func (c *ContainerDI) buildRepository() {
	c.RepositoryDuplicatas = duplicatas.NewDuplicatasRepository(c.ConnDB)
	c.RepositoryRotas = rotas_otimizadas.NewRotasOtimizadasRepository(c.ConnDB)
	c.RepositoryImportacao = importacao.NewImportacaoRepository(c.ConnDB)
	c.RepositoryCompartilhamento = compartilhamento.NewCompartilhamentoRepository(c.ConnDB)
	c.RepositoryMotoristas = motoristas.NewMotoristasRepository(c.ConnDB)
	c.RepositoryVeiculos = veiculos.NewVeiculosRepository(c.ConnDB)
	c.RepositoryDashboard = dashboard.NewDashboardRepository(c.ConnDB)
	c.LoginRepository = login.NewRepository(c.ConnDB)
}

func (c *ContainerDI) buildService() {
	c.ServiceDuplicatas = duplicatas.NewDuplicatasService(
		c.RepositoryDuplicatas,
		c.CacheEnderecos,
		c.Config.LimiarDuplicata,
		c.Config.LimiarConfiancaMedia,
		c.Config.LimiarConfiancaAlta,
	)
	c.ServiceRoteirizador = roteirizador.NewRoteirizadorService(
		c.Config.GoogleMapsKey,
		c.Config.MaxDistanciaCluster,
		c.Config.MaxTempoRota,
		c.Config.MaxParadasPorCluster,
	)
	c.ServiceRotas = rotas_otimizadas.NewRotasOtimizadasService(c.RepositoryRotas)
	c.ServiceImportacao = importacao.NewImportacaoService(c.RepositoryImportacao, c.ServiceDuplicatas, c.Config.AwsBucketName)
	c.ServiceCompartilhamento = compartilhamento.NewCompartilhamentoService(
		c.RepositoryCompartilhamento,
		c.Hub,
		c.Config.AppBaseUrl,
		int64(c.Config.MaxReenvios),
	)
	c.ServiceMotoristas = motoristas.NewMotoristasService(c.RepositoryMotoristas)
	c.ServiceVeiculos = veiculos.NewVeiculosService(c.RepositoryVeiculos)
	c.ServiceDashboard = dashboard.NewDashboardService(c.RepositoryDashboard)
	c.LoginService = login.NewService(c.LoginRepository, *c.PasetoMaker, c.Config.GoogleClientId)
}

func (c *ContainerDI) buildHandler() {
	c.HandlerDuplicatas = duplicatas.NewDuplicatasHandler(c.ServiceDuplicatas)
	c.HandlerRoteirizador = roteirizador.NewRoteirizadorHandler(c.ServiceRoteirizador)
	c.HandlerRotas = rotas_otimizadas.NewRotasOtimizadasHandler(c.ServiceRotas)
	c.HandlerImportacao = importacao.NewImportacaoHandler(c.ServiceImportacao)
	c.HandlerCompartilhamento = compartilhamento.NewCompartilhamentoHandler(c.ServiceCompartilhamento)
	c.HandlerMotoristas = motoristas.NewMotoristasHandler(c.ServiceMotoristas)
	c.HandlerVeiculos = veiculos.NewVeiculosHandler(c.ServiceVeiculos)
	c.HandlerDashboard = dashboard.NewDashboardHandler(c.ServiceDashboard)
	c.LoginHandler = login.NewHandler(c.LoginService)
	c.WsHandler = ws.NewWsHandler(c.Hub)
}
