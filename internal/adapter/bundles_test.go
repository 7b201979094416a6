// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/blended-mgmt/internal/config"
	"github.com/MKhiriev/blended-mgmt/internal/logger"
	"github.com/MKhiriev/blended-mgmt/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestResource creates a bundleResource with a short request timeout.
func newTestResource(t *testing.T) *bundleResource {
	t.Helper()
	r := NewBundleResource(config.Adapter{RequestTimeout: 2 * time.Second}, logger.Nop())
	return r.(*bundleResource)
}

func jsonHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

// ── Current ─────────────────────────────────────────────────────────────────

func TestCurrent_EmptyBeforeFetch(t *testing.T) {
	r := newTestResource(t)

	got := r.Current()
	require.NotNil(t, got)
	assert.Empty(t, got)
}

// ── Fetch ───────────────────────────────────────────────────────────────────

func TestFetch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/osgiManagement/bundles", r.URL.Path)
		jsonHandler(http.StatusOK, `[{"bundleId":0,"symbolicName":"SystemBundle"}]`)(w, r)
	}))
	defer srv.Close()

	r := newTestResource(t)
	got, err := r.Fetch(context.Background(), srv.URL+"/osgiManagement/bundles")

	require.NoError(t, err)
	want := []models.BundleInfo{{BundleID: 0, SymbolicName: "SystemBundle"}}
	assert.Equal(t, want, got)
	assert.Equal(t, want, r.Current())
}

func TestFetch_ReplacesCollectionWholesale(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			jsonHandler(http.StatusOK, `[{"bundleId":0,"symbolicName":"SystemBundle"},{"bundleId":1,"symbolicName":"org.apache.felix.shell"}]`)(w, r)
			return
		}
		jsonHandler(http.StatusOK, `[{"bundleId":7,"symbolicName":"blended.mgmt.rest","exportPackages":["blended.mgmt.rest"]}]`)(w, r)
	}))
	defer srv.Close()

	r := newTestResource(t)
	_, err := r.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, r.Current(), 2)

	_, err = r.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, []models.BundleInfo{{
		BundleID:       7,
		SymbolicName:   "blended.mgmt.rest",
		ExportPackages: []string{"blended.mgmt.rest"},
	}}, r.Current())
}

func TestFetch_NullBodyYieldsEmptyCollection(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(http.StatusOK, `null`))
	defer srv.Close()

	r := newTestResource(t)
	got, err := r.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFetch_FailureKeepsLastKnownGood(t *testing.T) {
	var fail atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			jsonHandler(http.StatusInternalServerError, "boom")(w, r)
			return
		}
		jsonHandler(http.StatusOK, `[{"bundleId":0,"symbolicName":"SystemBundle"}]`)(w, r)
	}))
	defer srv.Close()

	r := newTestResource(t)
	_, err := r.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	before := r.Current()

	fail.Store(true)
	got, err := r.Fetch(context.Background(), srv.URL)

	assert.Nil(t, got)
	require.ErrorIs(t, err, ErrFetchFailed)
	assert.ErrorIs(t, err, ErrInternalServerError)

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusInternalServerError, fetchErr.StatusCode)

	assert.Equal(t, before, r.Current())
}

func TestFetch_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"bad request", http.StatusBadRequest, ErrBadRequest},
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"forbidden", http.StatusForbidden, ErrForbidden},
		{"not found", http.StatusNotFound, ErrNotFound},
		{"conflict", http.StatusConflict, ErrConflict},
		{"bad gateway", http.StatusBadGateway, ErrBadGateway},
		{"service unavailable", http.StatusServiceUnavailable, ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(jsonHandler(tt.status, ""))
			defer srv.Close()

			r := newTestResource(t)
			_, err := r.Fetch(context.Background(), srv.URL)

			assert.ErrorIs(t, err, ErrFetchFailed)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, r.Current())
		})
	}
}

func TestFetch_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(http.StatusTeapot, ""))
	defer srv.Close()

	_, err := newTestResource(t).Fetch(context.Background(), srv.URL)
	require.ErrorIs(t, err, ErrFetchFailed)
	assert.Contains(t, err.Error(), "418")
}

func TestFetch_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(http.StatusOK, `{"bundleId": 0}`))
	defer srv.Close()

	r := newTestResource(t)
	_, err := r.Fetch(context.Background(), srv.URL)

	assert.ErrorIs(t, err, ErrFetchFailed)
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.Empty(t, r.Current())
}

func TestFetch_TransportError(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(http.StatusOK, `[]`))
	url := srv.URL
	srv.Close()

	_, err := newTestResource(t).Fetch(context.Background(), url)

	require.ErrorIs(t, err, ErrFetchFailed)
	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Zero(t, fetchErr.StatusCode)
}

func TestFetch_InvalidEndpoint(t *testing.T) {
	_, err := newTestResource(t).Fetch(context.Background(), "  ")

	assert.ErrorIs(t, err, ErrFetchFailed)
	assert.ErrorIs(t, err, ErrInvalidEndpoint)
}

func TestFetch_ContextCanceled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestResource(t).Fetch(ctx, srv.URL)
	assert.ErrorIs(t, err, ErrFetchFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFetch_RequestTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	r := NewBundleResource(config.Adapter{RequestTimeout: 50 * time.Millisecond}, logger.Nop())
	_, err := r.Fetch(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestFetch_SingleRequestPerCall(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		jsonHandler(http.StatusServiceUnavailable, "")(w, r)
	}))
	defer srv.Close()

	_, err := newTestResource(t).Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCurrent_ReturnsCopy(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(http.StatusOK, `[{"bundleId":1,"symbolicName":"a","exportPackages":["p"]}]`))
	defer srv.Close()

	r := newTestResource(t)
	_, err := r.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	got := r.Current()
	got[0].SymbolicName = "changed"
	got[0].ExportPackages[0] = "changed"

	assert.Equal(t, "a", r.Current()[0].SymbolicName)
	assert.Equal(t, "p", r.Current()[0].ExportPackages[0])
}

// TestFetch_ConcurrentReaders checks that readers see complete collections
// while fetches replace them.
func TestFetch_ConcurrentReaders(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1)%2 == 0 {
			jsonHandler(http.StatusOK, `[{"bundleId":1,"symbolicName":"a"},{"bundleId":2,"symbolicName":"b"}]`)(w, r)
			return
		}
		jsonHandler(http.StatusOK, `[{"bundleId":3,"symbolicName":"c"},{"bundleId":4,"symbolicName":"d"},{"bundleId":5,"symbolicName":"e"}]`)(w, r)
	}))
	defer srv.Close()

	r := newTestResource(t)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				_, _ = r.Fetch(context.Background(), srv.URL)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				n := len(r.Current())
				assert.Contains(t, []int{0, 2, 3}, n)
			}
		}()
	}
	wg.Wait()
}

// ── FetchBundle ─────────────────────────────────────────────────────────────

func TestFetch_OverlappingCallsKeepNewestResult(t *testing.T) {
	release := make(chan struct{})
	firstArrived := make(chan struct{})
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			close(firstArrived)
			<-release
			jsonHandler(http.StatusOK, `[{"bundleId":1,"symbolicName":"old.bundle"}]`)(w, r)
			return
		}
		jsonHandler(http.StatusOK, `[{"bundleId":2,"symbolicName":"new.bundle"}]`)(w, r)
	}))
	defer srv.Close()

	r := newTestResource(t)

	type result struct {
		bundles []models.BundleInfo
		err     error
	}
	slow := make(chan result, 1)
	go func() {
		got, err := r.Fetch(context.Background(), srv.URL)
		slow <- result{got, err}
	}()
	<-firstArrived

	// второй запрос стартует позже, но завершается первым
	newer, err := r.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Equal(t, "new.bundle", newer[0].SymbolicName)

	close(release)
	older := <-slow
	require.NoError(t, older.err)
	assert.Equal(t, "old.bundle", older.bundles[0].SymbolicName)

	assert.Equal(t, []models.BundleInfo{{BundleID: 2, SymbolicName: "new.bundle"}}, r.Current())
}

func TestFetch_FailedNewerCallDoesNotBlockOlderResult(t *testing.T) {
	release := make(chan struct{})
	firstArrived := make(chan struct{})
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			close(firstArrived)
			<-release
			jsonHandler(http.StatusOK, `[{"bundleId":1,"symbolicName":"old.bundle"}]`)(w, r)
			return
		}
		jsonHandler(http.StatusInternalServerError, `boom`)(w, r)
	}))
	defer srv.Close()

	r := newTestResource(t)

	done := make(chan error, 1)
	go func() {
		_, err := r.Fetch(context.Background(), srv.URL)
		done <- err
	}()
	<-firstArrived

	_, err := r.Fetch(context.Background(), srv.URL)
	require.ErrorIs(t, err, ErrFetchFailed)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, []models.BundleInfo{{BundleID: 1, SymbolicName: "old.bundle"}}, r.Current())
}

func TestFetchBundle_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/osgiManagement/bundles/42", r.URL.Path)
		jsonHandler(http.StatusOK, `{"bundleId":42,"symbolicName":"blended.util"}`)(w, r)
	}))
	defer srv.Close()

	r := newTestResource(t)
	got, err := r.FetchBundle(context.Background(), srv.URL+"/osgiManagement/bundles", 42)

	require.NoError(t, err)
	assert.Equal(t, models.BundleInfo{BundleID: 42, SymbolicName: "blended.util"}, got)
	assert.Empty(t, r.Current())
}

func TestFetchBundle_NotFound(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(http.StatusNotFound, "bundle not found"))
	defer srv.Close()

	_, err := newTestResource(t).FetchBundle(context.Background(), srv.URL, 9)
	assert.ErrorIs(t, err, ErrFetchFailed)
	assert.ErrorIs(t, err, ErrNotFound)
}
