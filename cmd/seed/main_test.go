package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_ReturnsConnectError(t *testing.T) {
	t.Setenv("MONGO_URI", "not-a-mongo-uri")
	t.Setenv("MONGO_DB_NAME", "griya")

	err := run(false)
	assert.ErrorContains(t, err, "failed to connect to MongoDB")
}
