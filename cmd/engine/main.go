package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"
	"syscall"
	"time"

	_ "lintang/roadgraph/docs"
	"lintang/roadgraph/pkg/config"
	"lintang/roadgraph/pkg/osmparser"
	"lintang/roadgraph/pkg/roadgraph"
	"lintang/roadgraph/pkg/server/rest"
	"lintang/roadgraph/pkg/server/rest/service"
	"lintang/roadgraph/pkg/snap"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

var (
	configFile = flag.String("config", "", "yaml config file, default $ROADGRAPH_CONFIG or ./roadgraph.yaml")
	listenAddr = flag.String("listenaddr", ":5000", "server listen address")
	mapFile    = flag.String("f", "solo_jogja.osm.pbf", "openstreeetmap .pbf file atau road map text file buat road network graphnya")
	heuristic  = flag.String("heuristic", "greatcircle", "A* heuristic, greatcircle or straightline")
	maxSnap    = flag.Float64("maxsnap", 1.0, "max distance (km) from a query point to the nearest vertex, 0 = unlimited")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile = flag.String("memprofile", "", "write memory profile to this file")
)

//	@title			roadgraph lintangbs API
//	@version		1.0
//	@description	road network graph in go. BFS, Dijkstra and A* with a per node path cache for shortest path query

//	@contact.name	lintang birda saputra

//	@license.name	GNU Affero General Public License v3.0
//	@license.url	https://www.gnu.org/licenses/gpl-3.0.en.html

// @host		localhost:5000
// @BasePath	/api
// @schemes	http
func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()

		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("reading map file %s", cfg.Map.File)
	g := roadgraph.NewMapGraph()
	summary, err := osmparser.LoadFile(ctx, cfg.Map.File, g)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("road network graph loaded: %d ways, %d vertices, %d edges", summary.Ways, summary.Vertices, summary.Edges)
	recordMemProfile(memprofile, "load_graph")

	rs := snap.NewRoadSnapper()
	rs.BuildRoadSnapper(g.GetVertices())

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	m := rest.NewMetrics(reg)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(rest.PromeHttpMiddleware(m)) // prometheus http middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	r.Mount("/debug", middleware.Profiler())

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(cfg.Server.SwaggerURL), //The url pointing to API definition
	))

	navigatorSvc := service.NewNavigationService(g, rs, cfg.Routing.MaxSnapDistance, cfg.Routing.Heuristic)
	recordMemProfile(memprofile, "service_init")

	rest.NavigatorRouter(r, navigatorSvc, m)

	srv := &http.Server{
		Addr:    cfg.Server.ListenAddr,
		Handler: r,
	}

	go func() {
		fmt.Printf("\nserver started at %s\n", cfg.Server.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Printf("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
}

// loadConfig reads the config file and applies the flags set on the command line.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if *configFile != "" {
		cfg, _, err = config.LoadFromPath(*configFile)
	} else {
		var path string
		cfg, path, err = config.Load()
		if path != "" {
			log.Printf("using config file %s", path)
		}
	}
	if err != nil {
		return nil, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "listenaddr":
			cfg.Server.ListenAddr = *listenAddr
			cfg.Server.SwaggerURL = fmt.Sprintf("http://localhost%s/swagger/doc.json", *listenAddr)
		case "f":
			cfg.Map.File = *mapFile
		case "heuristic":
			cfg.Routing.Heuristic = *heuristic
		case "maxsnap":
			cfg.Routing.MaxSnapDistance = *maxSnap
		}
	})
	return cfg, nil
}

func recordMemProfile(memprofile *string, name string) {
	if *memprofile != "" {
		*memprofile = strings.Replace(*memprofile, ".mprof", fmt.Sprintf("%s.mprof", name), -1)
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
