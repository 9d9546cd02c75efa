package app

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

type Config struct {
	Port string
}

func (a App) Start() {
	limiter := newIPLimiter(rate.Every(time.Second), 5)

	mux := http.NewServeMux()
	mux.Handle("/static/",
		http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))
	mux.Handle("/", ComponentHandler(a.index))
	mux.Handle("/genomics", ComponentHandler(a.genomics))
	mux.Handle("/regulatory", ComponentHandler(a.regulatory))
	mux.Handle("/surveillance", ComponentHandler(a.surveillance))
	mux.Handle("/rna", ComponentHandler(a.rna))
	mux.Handle("/cocktail", limiter.wrap(ComponentHandler(a.cocktail)))
	mux.Handle("/upload", limiter.wrap(ComponentHandler(a.upload)))
	mux.Handle("/export", limiter.wrap(http.HandlerFunc(a.export)))
	mux.Handle("/export/cocktail", limiter.wrap(http.HandlerFunc(a.exportCocktail)))

	slog.Info(fmt.Sprintf("App running on %s...", a.Config.Port))
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%s", a.Config.Port), mux))
}
