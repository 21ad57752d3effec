package main

import (
	"bufio"
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/quantumauth-io/quantum-go-utils/log"

	clientconfig "github.com/wasmdash/wasmdash-client/cmd/wasmdash-client/config"
	"github.com/wasmdash/wasmdash-client/internal/backend"
	"github.com/wasmdash/wasmdash-client/internal/helpers"
	clienthttp "github.com/wasmdash/wasmdash-client/internal/http"
	"github.com/wasmdash/wasmdash-client/internal/session"
	"github.com/wasmdash/wasmdash-client/internal/signer"
	"github.com/wasmdash/wasmdash-client/internal/ui"
	"github.com/wasmdash/wasmdash-client/internal/upload"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	log.Info("wasmdash-client",
		"version", Version,
		"commit", Commit,
		"build_date", BuildDate,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := clientconfig.Load()
	if err != nil {
		log.Fatal("failed to parse config", "error", err)
	}

	settings, err := backend.Select(cfg.BackendID)
	if err != nil {
		log.Fatal("backend selection failed", "error", err, "known", backend.Known())
	}
	log.Info("backend selected",
		"id", settings.ID,
		"node", settings.PrimaryNodeURL(),
		"prefix", settings.AddressPrefix,
		"gas_price", settings.GasPrice.String(),
	)

	cs := cfg.ClientSettings
	interactive := helpers.IsInteractive()
	stdin := bufio.NewReader(os.Stdin)

	if cs.SignerKey == "" && cs.PromptForSignerKey && interactive {
		if cs.SignerKey, err = helpers.PromptSignerKey(); err != nil {
			log.Error("signer key prompt failed", "error", err)
			return
		}
	}

	var client signer.Uploader
	if cs.SignerURL != "" {
		c, err := signer.DialWithRetry(ctx, signer.DialConfig{
			URL:             cs.SignerURL,
			APIKey:          cs.SignerKey,
			ExpectedChainID: settings.ChainID(),
			Timeout:         cfg.SignerDialTimeout(),
		})
		if err != nil {
			log.Warn("remote signer unavailable, uploads disabled", "url", cs.SignerURL, "error", err)
		} else {
			defer c.Close()
			client = c
		}
	} else {
		log.Warn("no signer configured, uploads disabled")
	}

	sess := session.New(settings, client)

	address := cs.UserAddress
	if address == "" && cs.PromptForAddress && interactive {
		address = helpers.PromptUserAddress(stdin, os.Stdout, settings.AddressPrefix)
	}
	if address != "" {
		if err = sess.Connect(address); err != nil {
			log.Error("configured address rejected", "address", address, "error", err)
		} else {
			log.Info("account connected", "address", address)
		}
	}

	handler, err := clienthttp.NewServer(ctx, clienthttp.Options{
		Backend:        settings,
		Session:        sess,
		Workflow:       upload.NewWorkflow(settings, sess),
		AllowedOrigins: cs.AllowedOrigins,
	})
	if err != nil {
		log.Error("failed to init HTTP server", "error", err)
		return
	}

	svc := ui.NewUi(ui.Config{
		Addr:    net.JoinHostPort(cs.LocalHost, cs.Port),
		Handler: handler,
	})
	if err = svc.Start(); err != nil {
		log.Error("failed to start HTTP server", "error", err)
		return
	}
	log.Info("new code page", "url", svc.URL()+"/codes/new")

	<-ctx.Done()
	log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err = svc.Stop(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown failed", "error", err)
	} else {
		log.Info("HTTP server gracefully stopped")
	}
}
