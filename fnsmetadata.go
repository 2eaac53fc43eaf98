package fnsmetadata

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-co-op/gocron"
	"github.com/zkfairdomains/fns-metadata/common"
	"github.com/zkfairdomains/fns-metadata/image"
	"github.com/zkfairdomains/fns-metadata/schema"
	"github.com/zkfairdomains/fns-metadata/subgraph"
)

type Server struct {
	cfg       schema.Config
	engine    *gin.Engine
	networks  *Networks
	indexer   Indexer
	resolver  *Resolver
	formatter *image.Formatter
	scheduler *gocron.Scheduler
}

func New(cfg schema.Config) (*Server, error) {
	networks, err := NewNetworks(cfg, DialEthClient)
	if err != nil {
		return nil, err
	}
	registry, err := NewRegistry(cfg.RegistryAddress)
	if err != nil {
		return nil, err
	}
	indexer := subgraph.New(&http.Client{})
	return newServer(cfg, networks, indexer, registry), nil
}

func newServer(cfg schema.Config, networks *Networks, indexer Indexer, registry *Registry) *Server {
	if cfg.Timeout <= 0 {
		cfg.Timeout = schema.DefaultTimeout
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	s := &Server{
		cfg:       cfg,
		engine:    engine,
		networks:  networks,
		indexer:   indexer,
		resolver:  NewResolver(networks, indexer, registry, cfg.VerifyNamehash),
		formatter: image.NewFormatter(),
		scheduler: gocron.NewScheduler(time.UTC),
	}
	s.registerRoutes(engine)
	return s
}

func (s *Server) Run() {
	if s.cfg.MetricsPort != "" {
		common.NewMetricServer(s.cfg.MetricsPort)
	}
	if s.cfg.IndexLagInterval > 0 {
		go s.runJobs()
	}
	log.Info("metadata server listening", "port", s.cfg.Port)
	go s.runAPI(s.cfg.Port)
}

func (s *Server) Close() {
	s.scheduler.Stop()
}
