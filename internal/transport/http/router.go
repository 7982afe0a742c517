package http

import (
	"bufio"
	"errors"
	"log"
	"net"
	"net/http"
	"time"
)

// NewRouter wires every endpoint onto a mux with request logging.
func NewRouter(handler *Handler, ws *WSHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", handler.healthz)
	mux.HandleFunc("POST /api/nonce", handler.issueNonce)
	mux.HandleFunc("GET /api/questions", handler.listQuestions)
	mux.HandleFunc("POST /api/answer/check", handler.checkAnswer)
	mux.HandleFunc("POST /api/quiz/submit", handler.submitQuiz)
	mux.HandleFunc("POST /api/spin", handler.spin)
	mux.HandleFunc("GET /api/leaderboard", handler.leaderboard)
	mux.HandleFunc("GET /api/profile/{address}", handler.profile)
	mux.HandleFunc("GET /ws/leaderboard", ws.ServeLeaderboard)

	return withRequestLogging(mux)
}

func withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("%s %s -> %d (%s)", r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Hijack keeps websocket upgrades working behind the logging wrapper.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	return hijacker.Hijack()
}
