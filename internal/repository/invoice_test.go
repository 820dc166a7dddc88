package repository

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insurtech-labs/claims-adjudicator/gen/ent"
)

func openTestDB(t *testing.T) (*ent.Client, *slog.Logger) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dsn := "file:" + filepath.Join(t.TempDir(), "claims.db") + "?_pragma=foreign_keys(1)"
	client, err := OpenSQLite(context.Background(), dsn, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client, logger
}

func TestListByClaimPreservesUploadOrder(t *testing.T) {
	client, logger := openTestDB(t)
	claims := NewClaimRepository(client, logger)
	invoices := NewInvoiceRepository(client, logger)

	ctx := context.Background()
	claim, err := claims.Create(ctx, &CreateClaimRequest{
		ClaimNumber:     "CLM-2024-0042",
		PolicyNumber:    "HO-556677",
		ClaimantName:    "Jordan Velasquez",
		PropertyAddress: "12 Main St, Springfield",
		DateOfLoss:      time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		CauseOfLoss:     "wind",
	})
	require.NoError(t, err)

	for _, name := range []string{"first.pdf", "second.pdf", "third.pdf"} {
		_, err := invoices.Create(ctx, claim.ID, name, "application/pdf", 4)
		require.NoError(t, err)
		// distinct created_at values so the ordering is unambiguous
		time.Sleep(5 * time.Millisecond)
	}

	got, err := invoices.ListByClaim(ctx, claim.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)

	names := make([]string, len(got))
	for i, inv := range got {
		names[i] = inv.FileName
	}
	assert.Equal(t, []string{"first.pdf", "second.pdf", "third.pdf"}, names)
}
