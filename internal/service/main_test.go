package service_test

import (
	"os"
	"testing"

	"github.com/jadebook/jadebook/internal/service"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	os.Exit(m.Run())
}
