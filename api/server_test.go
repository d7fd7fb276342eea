package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerStartReturnsAfterShutdown(t *testing.T) {
	a := newTestAPI(t, Dependencies{}, nil)
	server, err := NewServer(map[string]string{"PORT": "0"}, a.db, Dependencies{Issuer: a.issuer})
	require.NoError(t, err)

	// nobody reads until Start has returned, as after main stops listening
	errChannel := make(chan error, 2)
	done := make(chan struct{})
	go func() {
		server.Start(errChannel)
		close(done)
	}()

	server.ShutdownGracefully(time.Second)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after shutdown")
	}
	assert.ErrorIs(t, <-errChannel, http.ErrServerClosed)
}

func TestNewServerRequiresIssuer(t *testing.T) {
	a := newTestAPI(t, Dependencies{}, nil)
	_, err := NewServer(nil, a.db, Dependencies{})
	assert.Error(t, err)
}
