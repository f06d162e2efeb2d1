package fabric

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/ukaji3/fabric-deploy-go/pkg/fabricdeploy/models"
)

// fakeController emulates the login and object endpoints of the controller.
type fakeController struct {
	loginStatus int
	pushStatus  int
	pushed      [][]byte
	cookies     []string
}

func (f *fakeController) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	switch r.URL.Path {
	case loginPath:
		if f.loginStatus != http.StatusOK {
			w.WriteHeader(f.loginStatus)
			_, _ = w.Write([]byte(`{"imdata":[{"error":{"attributes":{"code":"401","text":"Username or password is incorrect"}}}]}`))
			return
		}
		if gjson.GetBytes(body, "aaaUser.attributes.name").String() != "admin" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"imdata":[{"aaaLogin":{"attributes":{"token":"tok123"}}}]}`))
	case pushPath:
		if c, err := r.Cookie(cookieName); err == nil {
			f.cookies = append(f.cookies, c.Value)
		}
		if f.pushStatus != http.StatusOK {
			w.WriteHeader(f.pushStatus)
			_, _ = w.Write([]byte(`{"imdata":[{"error":{"attributes":{"code":"103","text":"unresolved relation"}}}]}`))
			return
		}
		f.pushed = append(f.pushed, body)
		_, _ = w.Write([]byte(`{"imdata":[]}`))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func newTestClient(t *testing.T, f *fakeController) *Client {
	t.Helper()
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, "admin", "secret", WithHTTPClient(srv.Client()), WithLogger(logr.Discard()))
	require.NoError(t, err)
	return c
}

func TestClient_New(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"https", "https://apic.example.com", false},
		{"http with path", "http://10.0.0.1:8080/", false},
		{"missing scheme", "apic.example.com", true},
		{"unsupported scheme", "ftp://apic", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.url, "admin", "secret")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClient_ConnectAndPush(t *testing.T) {
	f := &fakeController{loginStatus: http.StatusOK, pushStatus: http.StatusOK}
	c := newTestClient(t, f)
	ctx := context.Background()

	require.NoError(t, c.Connect(ctx))
	require.NoError(t, c.Push(ctx, models.BaselineInterfacePolicies{}))

	iface := &models.InterfaceConfig{
		Name:     "Eth1",
		Topology: models.AccessPort,
		Ports:    []models.PortSpec{{Leaf: "101", Card: "1", Port: "1"}},
		AEP:      "AEP1",
	}
	require.NoError(t, c.Push(ctx, iface))

	require.Len(t, f.pushed, 2)
	assert.Equal(t, []string{"tok123", "tok123"}, f.cookies)
	assert.Equal(t, PolicyCDPEnabled, gjson.GetBytes(f.pushed[0], "infraInfra.children.0.cdpIfPol.attributes.name").String())
	assert.Equal(t, "Eth1", gjson.GetBytes(f.pushed[1], "infraInfra.children.0.infraFuncP.children.0.infraAccPortGrp.attributes.name").String())
}

func TestClient_ConnectRejected(t *testing.T) {
	f := &fakeController{loginStatus: http.StatusUnauthorized}
	c := newTestClient(t, f)

	err := c.Connect(context.Background())
	var connErr *ConnectError
	require.True(t, errors.As(err, &connErr))
	assert.Equal(t, http.StatusUnauthorized, connErr.Status)
	assert.Contains(t, err.Error(), "Username or password is incorrect")
}

func TestClient_ConnectUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := New(url, "admin", "secret", WithLogger(logr.Discard()))
	require.NoError(t, err)

	err = c.Connect(context.Background())
	var connErr *ConnectError
	require.True(t, errors.As(err, &connErr))
	assert.Zero(t, connErr.Status)
}

func TestClient_PushBeforeConnect(t *testing.T) {
	c := newTestClient(t, &fakeController{loginStatus: http.StatusOK, pushStatus: http.StatusOK})

	err := c.Push(context.Background(), models.BaselineInterfacePolicies{})
	require.ErrorIs(t, err, ErrNotConnected)
}

func TestClient_PushRejected(t *testing.T) {
	f := &fakeController{loginStatus: http.StatusOK, pushStatus: http.StatusBadRequest}
	c := newTestClient(t, f)
	ctx := context.Background()
	require.NoError(t, c.Connect(ctx))

	err := c.Push(ctx, &models.InterfaceConfig{Name: "Eth1", Ports: []models.PortSpec{{Leaf: "101", Card: "1", Port: "1"}}})
	var pushErr *PushError
	require.True(t, errors.As(err, &pushErr))
	assert.Equal(t, "Eth1", pushErr.Object)
	assert.Equal(t, http.StatusBadRequest, pushErr.Status)
	assert.Contains(t, err.Error(), "unresolved relation")
}

type unknownObject struct{}

func (unknownObject) ObjectName() string { return "unknown" }

func TestClient_PushUnsupported(t *testing.T) {
	f := &fakeController{loginStatus: http.StatusOK, pushStatus: http.StatusOK}
	c := newTestClient(t, f)
	ctx := context.Background()
	require.NoError(t, c.Connect(ctx))

	err := c.Push(ctx, unknownObject{})
	require.ErrorIs(t, err, ErrUnsupportedObject)
	assert.Empty(t, f.pushed)
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestClient_WithInsecure(t *testing.T) {
	srv := httptest.NewTLSServer(&fakeController{loginStatus: http.StatusOK, pushStatus: http.StatusOK})
	t.Cleanup(srv.Close)

	custom := &http.Client{Timeout: 5 * time.Second}

	tests := []struct {
		name string
		opts []Option
	}{
		{"insecure only", []Option{WithInsecure()}},
		{"insecure before custom client", []Option{WithInsecure(), WithHTTPClient(custom)}},
		{"insecure after custom client", []Option{WithHTTPClient(custom), WithInsecure()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]Option{WithLogger(logr.Discard())}, tt.opts...)
			c, err := New(srv.URL, "admin", "secret", opts...)
			require.NoError(t, err)
			require.NoError(t, c.Connect(context.Background()))
		})
	}

	// The custom client keeps its settings and is not modified in place
	c, err := New(srv.URL, "admin", "secret", WithInsecure(), WithHTTPClient(custom))
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, c.http.Timeout)
	assert.NotSame(t, custom, c.http)
	assert.Nil(t, custom.Transport)
}

func TestClient_WithoutInsecureRejectsUnknownCert(t *testing.T) {
	srv := httptest.NewTLSServer(&fakeController{loginStatus: http.StatusOK, pushStatus: http.StatusOK})
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, "admin", "secret", WithLogger(logr.Discard()))
	require.NoError(t, err)

	var connErr *ConnectError
	require.True(t, errors.As(c.Connect(context.Background()), &connErr))
}

func TestClient_WithInsecureCustomTransport(t *testing.T) {
	hc := &http.Client{Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("unused")
	})}

	_, err := New("https://apic", "admin", "secret", WithHTTPClient(hc), WithInsecure())
	assert.Error(t, err)
}
