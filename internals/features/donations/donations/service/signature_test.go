package service

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
	"time"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colosagu_backend/internals/configs"
)

func TestMidtransSignature(t *testing.T) {
	sum := sha512.Sum512([]byte("order-1" + "200" + "50000.00" + "SB-Mid-server-xyz"))
	want := hex.EncodeToString(sum[:])

	got := MidtransSignature("order-1", "200", "50000.00", "SB-Mid-server-xyz")
	assert.Equal(t, want, got)
	assert.Len(t, got, 128)
}

func TestVerifySignature(t *testing.T) {
	key := "SB-Mid-server-xyz"
	sig := MidtransSignature("order-1", "200", "50000.00", key)

	assert.True(t, VerifySignature("order-1", "200", "50000.00", key, sig))
	assert.True(t, VerifySignature("order-1", "200", "50000.00", key, strings.ToUpper(sig)))

	assert.False(t, VerifySignature("order-1", "200", "50001.00", key, sig))
	assert.False(t, VerifySignature("order-1", "200", "50000.00", "other-key", sig))
	assert.False(t, VerifySignature("order-1", "200", "50000.00", key, ""))
	assert.False(t, VerifySignature("order-1", "200", "50000.00", "", sig))
}

func TestNewGatewayError(t *testing.T) {
	ge := newGatewayError(OpQueryStatus, &midtrans.Error{Message: "Merchant cannot be found", StatusCode: 404})
	assert.Equal(t, OpQueryStatus, ge.Op)
	assert.Equal(t, "Merchant cannot be found", ge.Detail)
	assert.Equal(t, 404, ge.StatusCode)
	assert.Equal(t, OpQueryStatus+": Merchant cannot be found", ge.Error())

	var me *midtrans.Error
	require.True(t, errors.As(ge, &me))

	plain := newGatewayError(OpCreateSession, errors.New("dial tcp: timeout"))
	assert.Equal(t, "dial tcp: timeout", plain.Detail)
	assert.Zero(t, plain.StatusCode)

	empty := &GatewayError{Op: OpCreateSession}
	assert.Equal(t, OpCreateSession, empty.Error())
}

func TestSnapScriptURL(t *testing.T) {
	assert.Contains(t, SnapScriptURL(false), "sandbox")
	assert.NotContains(t, SnapScriptURL(true), "sandbox")
}

func TestNewMidtransGateway_OwnHTTPClient(t *testing.T) {
	global := midtrans.DefaultGoHttpClient
	globalTimeout := global.Timeout

	g := NewMidtransGateway(configs.MidtransConfig{ServerKey: "SB-Mid-server-xyz", Timeout: 1500 * time.Millisecond})

	assert.Same(t, global, midtrans.DefaultGoHttpClient)
	assert.Equal(t, globalTimeout, midtrans.DefaultGoHttpClient.Timeout)

	for _, hc := range []midtrans.HttpClient{g.snap.HttpClient, g.core.HttpClient} {
		impl, ok := hc.(*midtrans.HttpClientImplementation)
		require.True(t, ok)
		require.NotNil(t, impl.HttpClient)
		assert.Equal(t, 1500*time.Millisecond, impl.HttpClient.Timeout)
		assert.NotNil(t, impl.Logger)
		assert.NotSame(t, global, impl.HttpClient)
	}
	assert.NotSame(t, g.snap.HttpClient, g.core.HttpClient)
}
