package report

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"skin-catalog/core/catalog"
	"skin-catalog/core/models"
	"skin-catalog/core/reconcile"
	"skin-catalog/core/storage"
	"skin-catalog/core/storage/mocks"

	"github.com/gofrs/flock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testPlan() *reconcile.Plan {
	return &reconcile.Plan{
		NewEntries: []models.NewEntry{
			{Name: "Captain America", ID: "1022", SkinID: "1022101", SkinName: "Captain Klyntar", Origin: models.OriginHarvested},
			{Name: "Hulk", ID: "1011", SkinID: "1011301", SkinName: "Cosmic Smash", Origin: models.OriginSynthesized, Tier: "epic"},
		},
		Diagnostics: []models.Diagnostic{
			{Kind: models.KindSkinIDNotFound, Character: "Storm", Skin: "Mystery", Message: "skin id not found"},
		},
		Summary: reconcile.PlanSummary{CatalogEntries: 10, Characters: 3, Harvested: 5, Existing: 2, New: 2, Synthesized: 1, Skipped: 1},
	}
}

func TestRenderPlan(t *testing.T) {
	var buf bytes.Buffer
	RenderPlan(&buf, testPlan())

	out := buf.String()
	assert.Contains(t, out, "New skins")
	assert.Contains(t, out, "Captain Klyntar")
	assert.Contains(t, out, "1011301")
	assert.Contains(t, out, "skin_id_not_found")
	assert.Contains(t, out, "Synthesized ids")
	assert.NotContains(t, out, "No new skins found.")

	buf.Reset()
	RenderPlan(&buf, &reconcile.Plan{})
	assert.Contains(t, buf.String(), "No new skins found.")
	assert.NotContains(t, buf.String(), "New skins")
}

func TestPublish_WritesFile(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out", "new_skins.json")
	p := NewPublisher(nil, storage.Config{}, zap.NewNop())

	out, err := p.Publish(context.Background(), output, filepath.Join(dir, "character_data.json"), testPlan())
	require.NoError(t, err)
	assert.Equal(t, output, out.Path)
	assert.Empty(t, out.ObjectKey)

	got, err := catalog.LoadFile(output)
	require.NoError(t, err)
	assert.Equal(t, testPlan().Entries(), got)
}

func TestPublish_EmptyPlanWritesNothing(t *testing.T) {
	output := filepath.Join(t.TempDir(), "new_skins.json")
	p := NewPublisher(nil, storage.Config{}, zap.NewNop())

	out, err := p.Publish(context.Background(), output, "", &reconcile.Plan{})
	require.NoError(t, err)
	assert.Empty(t, out.Path)

	_, err = os.Stat(output)
	assert.True(t, os.IsNotExist(err))
}

func TestPublish_RefusesSource(t *testing.T) {
	source := filepath.Join(t.TempDir(), "character_data.json")
	require.NoError(t, os.WriteFile(source, []byte("[]"), 0o644))
	p := NewPublisher(nil, storage.Config{}, zap.NewNop())

	_, err := p.Publish(context.Background(), source, source, testPlan())
	assert.ErrorIs(t, err, catalog.ErrWouldOverwriteSource)

	raw, _ := os.ReadFile(source)
	assert.Equal(t, "[]", string(raw))
}

func TestPublish_Locked(t *testing.T) {
	output := filepath.Join(t.TempDir(), "new_skins.json")

	held := flock.New(output + ".lock")
	ok, err := held.TryLock()
	require.NoError(t, err)
	require.True(t, ok)
	defer held.Unlock()

	p := NewPublisher(nil, storage.Config{}, zap.NewNop())
	_, err = p.Publish(context.Background(), output, "", testPlan())
	assert.ErrorIs(t, err, ErrLocked)
}

func TestPublish_Upload(t *testing.T) {
	ctx := context.Background()
	output := filepath.Join(t.TempDir(), "new_skins.json")
	cfg := storage.Config{Bucket: "skin-reports", Prefix: "reports/"}

	m := new(mocks.Client)
	m.On("BucketExists", ctx, "skin-reports").Return(true, nil)
	m.On("PutObject", ctx, "skin-reports", "reports/new_skins-20250301T101500Z.json", mock.Anything, mock.AnythingOfType("int64"), mock.Anything).
		Return(minio.UploadInfo{}, nil)

	p := NewPublisher(m, cfg, zap.NewNop())
	p.now = func() time.Time { return time.Date(2025, 3, 1, 10, 15, 0, 0, time.UTC) }

	out, err := p.Publish(ctx, output, "", testPlan())
	require.NoError(t, err)
	assert.Equal(t, "reports/new_skins-20250301T101500Z.json", out.ObjectKey)
	m.AssertExpectations(t)
}

func TestPublish_UploadFailureKeepsFile(t *testing.T) {
	ctx := context.Background()
	output := filepath.Join(t.TempDir(), "new_skins.json")

	m := new(mocks.Client)
	m.On("BucketExists", ctx, "b").Return(false, errors.New("unreachable"))

	p := NewPublisher(m, storage.Config{Bucket: "b"}, zap.NewNop())
	out, err := p.Publish(ctx, output, "", testPlan())
	assert.ErrorContains(t, err, "unreachable")
	require.NotNil(t, out)
	assert.Equal(t, output, out.Path)
	assert.FileExists(t, output)
}

func TestObjectKey(t *testing.T) {
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.FixedZone("X", 3600))
	assert.Equal(t, "new_skins-20250102T020405Z.json", ObjectKey("", at))
	assert.Equal(t, "reports/new_skins-20250102T020405Z.json", ObjectKey("reports/", at))
}
