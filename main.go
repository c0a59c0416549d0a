package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"pujo-gallery/internal"
	"pujo-gallery/internal/conf"
	"pujo-gallery/internal/routers"
)

var (
	noDefaultFeatures bool
	features          suites
	configPath        string
)

type suites []string

func (s *suites) String() string {
	return strings.Join(*s, ",")
}

func (s *suites) Set(value string) error {
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			*s = append(*s, item)
		}
	}
	return nil
}

func init() {
	flag.BoolVar(&noDefaultFeatures, "no-default-features", false, "whether not use default features")
	flag.Var(&features, "features", "use special features, comma separated")
	flag.StringVar(&configPath, "c", "", "directory holding a config.yaml that overrides the defaults")
	flag.Parse()

	var paths []string
	if configPath != "" {
		paths = append(paths, configPath)
	}
	conf.Initialize(features, noDefaultFeatures, paths...)
}

func main() {
	gin.SetMode(conf.ServerSetting.RunMode)

	s := internal.Initialize(context.Background())
	server := &http.Server{
		Addr:           conf.ServerSetting.HttpIp + ":" + conf.ServerSetting.HttpPort,
		Handler:        routers.NewRouter(s),
		ReadTimeout:    conf.ServerSetting.ReadTimeout,
		WriteTimeout:   conf.ServerSetting.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}

	fmt.Fprintf(color.Output, "%s service listen on %s\n",
		color.GreenString(conf.AppSetting.Name),
		color.CyanString("http://%s", server.Addr),
	)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server.ListenAndServe err: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logrus.Errorf("server.Shutdown err: %v", err)
	}
	fmt.Fprintln(color.Output, color.YellowString("%s service stopped", conf.AppSetting.Name))
}
