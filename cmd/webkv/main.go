package main

import (
	"log"
	"net/http"
	"os"

	"github.com/jessevdk/go-flags"

	"webkv/internal/api"
	"webkv/internal/kv"
)

type options struct {
	Listen string `short:"l" long:"listen" env:"LISTEN_ADDR" default:"127.0.0.1:3000" description:"address to listen on"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		// go-flags already prints a user-friendly message.
		log.Fatalf("%v", err)
	}

	log.Printf("[BOOT] Starting webkv on %s", opts.Listen)

	store := kv.NewStore()
	router := api.NewRouter(store)

	log.Printf("[HTTP] Listening on http://%s", opts.Listen)
	if err := http.ListenAndServe(opts.Listen, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
