package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"market-master/config"
	httpLayer "market-master/http"
	"market-master/repository"
	"market-master/service"
	"market-master/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg)
	},
}

type stores struct {
	sessions repository.SessionRepository
	cache    repository.CacheRepository
	sweeper  *repository.SessionRepositoryMemory
	close    func() error
}

func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	if !cfg.Redis.Enabled {
		mem := repository.NewSessionRepositoryMemory(cfg.Session.TTL)
		return &stores{
			sessions: mem,
			cache:    repository.NewMemoryCache(),
			sweeper:  mem,
			close:    func() error { return nil },
		}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis %s: %w", cfg.Redis.Addr, err)
	}

	return &stores{
		sessions: repository.NewSessionRepositoryRedis(rdb, cfg.Redis.KeyPrefix, cfg.Session.TTL),
		cache:    repository.NewRedisCache(rdb, cfg.Redis.KeyPrefix),
		close:    rdb.Close,
	}, nil
}

func serve(ctx context.Context, cfg *config.Config) error {
	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.close()

	forms, err := service.NewFormService(web.FormsFS())
	if err != nil {
		return fmt.Errorf("load forms: %w", err)
	}

	sessions := service.NewSessionService(st.sessions, cfg.Calculator.LoanTerms, cfg.Calculator.Defaults())
	limiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Window)
	defer limiter.Stop()

	srv := httpLayer.NewServer(cfg, httpLayer.Services{
		Sessions: sessions,
		FontSize: service.NewFontSizeService(st.cache),
		Forms:    forms,
	}, limiter)

	httpSrv := &http.Server{
		Addr:         cfg.API.Addr(),
		Handler:      srv.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("API listening on http://%s", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})
	if st.sweeper != nil {
		g.Go(func() error {
			ticker := time.NewTicker(cfg.Session.SweepInterval)
			defer ticker.Stop()
			for {
				select {
				case <-gctx.Done():
					return nil
				case <-ticker.C:
					if n := st.sweeper.Sweep(); n > 0 && cfg.Logging.Debug() {
						log.Printf("swept %d expired sessions", n)
					}
				}
			}
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	log.Println("Server exited")
	return nil
}
