package rai_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rai "github.com/raihq/rai-go"
)

func TestDefaultBeforeInit(t *testing.T) {
	rai.Reset()

	_, err := rai.Default()
	assert.ErrorIs(t, err, rai.ErrNotInitialized)

	_, err = rai.Find(context.Background(), rai.Query{"sku": "X"})
	assert.ErrorIs(t, err, rai.ErrNotInitialized)
}

func TestInitOnce(t *testing.T) {
	rai.Reset()
	t.Cleanup(rai.Reset)

	first, err := rai.Init(testConfig("http://127.0.0.1:1"))
	require.NoError(t, err)

	_, err = rai.Init(testConfig("http://127.0.0.1:1"))
	assert.ErrorIs(t, err, rai.ErrAlreadyInitialized)

	got, err := rai.Default()
	require.NoError(t, err)
	assert.Same(t, first, got)
}

func TestResetAllowsReinit(t *testing.T) {
	rai.Reset()
	t.Cleanup(rai.Reset)

	_, err := rai.Init(testConfig("http://127.0.0.1:1"))
	require.NoError(t, err)

	rai.Reset()

	_, err = rai.Init(testConfig("http://127.0.0.1:1"))
	require.NoError(t, err)
}

func TestInitRejectsInvalidConfig(t *testing.T) {
	rai.Reset()
	t.Cleanup(rai.Reset)

	cfg := testConfig("http://127.0.0.1:1")
	cfg.Credential.KeyID = "short"

	_, err := rai.Init(cfg)
	require.Error(t, err)

	// A failed Init leaves no registered client behind.
	_, err = rai.Default()
	assert.ErrorIs(t, err, rai.ErrNotInitialized)
}

func TestStaticFacadeForwardsToDefaultClient(t *testing.T) {
	srv := newStubServer(t, `{"data": [{"sku": "ITEM-001"}]}`)
	defer srv.Close()

	rai.Reset()
	t.Cleanup(rai.Reset)

	_, err := rai.Init(testConfig(srv.URL))
	require.NoError(t, err)

	docs, err := rai.Find(context.Background(), rai.Query{"sku": "ITEM-001"})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "ITEM-001", docs[0]["sku"])

	doc, err := rai.FindOne(context.Background(), rai.Query{"sku": "ITEM-001"})
	require.NoError(t, err)
	assert.Equal(t, "ITEM-001", doc["sku"])
}
