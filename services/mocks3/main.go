package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"
)

// A minimal path-style S3 endpoint for local runs. Point S3_ENDPOINT at it.
func main() {
	addr := getEnv("MOCK_S3_ADDR", ":9090")
	bucket := getEnv("S3_BUCKET", "kinomatch-images")
	server := NewMockS3Server(addr, bucket)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			log.Printf("mock S3 server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down mock S3 server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.Stop(ctx)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

type MockS3Server struct {
	server *http.Server
	bucket string
	data   *sync.Map
}

type ObjectData struct {
	Content     []byte
	ContentType string
}

func NewMockS3Server(addr, bucket string) *MockS3Server {
	mux := http.NewServeMux()
	server := &MockS3Server{
		server: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		bucket: bucket,
		data:   &sync.Map{},
	}

	mux.HandleFunc("/", server.handleRequest)
	return server
}

func (m *MockS3Server) Start() error {
	log.Printf("mock S3 server for bucket %s starting on %s", m.bucket, m.server.Addr)
	return m.server.ListenAndServe()
}

func (m *MockS3Server) Stop(ctx context.Context) error {
	return m.server.Shutdown(ctx)
}

func (m *MockS3Server) handleRequest(w http.ResponseWriter, r *http.Request) {
	bucket, key := extractBucketAndKey(r.URL.Path)
	if bucket != m.bucket {
		http.Error(w, "NoSuchBucket", http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodHead:
		if key == "" {
			w.WriteHeader(http.StatusOK)
			return
		}
		m.headObject(w, key)
	case http.MethodGet:
		m.getObject(w, key)
	case http.MethodPut:
		m.putObject(w, r, key)
	case http.MethodDelete:
		m.data.Delete(key)
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func extractBucketAndKey(path string) (string, string) {
	parts := strings.SplitN(strings.TrimPrefix(path, "/"), "/", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func (m *MockS3Server) headObject(w http.ResponseWriter, key string) {
	obj, ok := m.data.Load(key)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", obj.(*ObjectData).ContentType)
	w.WriteHeader(http.StatusOK)
}

func (m *MockS3Server) getObject(w http.ResponseWriter, key string) {
	obj, ok := m.data.Load(key)
	if !ok {
		http.Error(w, "NoSuchKey", http.StatusNotFound)
		return
	}

	data := obj.(*ObjectData)
	w.Header().Set("Content-Type", data.ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data.Content)
}

func (m *MockS3Server) putObject(w http.ResponseWriter, r *http.Request, key string) {
	if key == "" {
		http.Error(w, "key required", http.StatusBadRequest)
		return
	}
	content, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	m.data.Store(key, &ObjectData{Content: content, ContentType: contentType})
	w.Header().Set("ETag", `"mock"`)
	w.WriteHeader(http.StatusOK)
}
