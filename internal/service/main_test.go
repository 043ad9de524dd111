//go:build integration

package service

import (
	"context"
	"os"
	"testing"

	"github.com/guttosm/planning-service/internal/testutil"
)

func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
}
