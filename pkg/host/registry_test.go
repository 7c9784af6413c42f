package host

import (
	"testing"

	"github.com/hanskasan/booksim2/pkg/params"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryKnowsBookSim(t *testing.T) {
	require.Equal(t, []string{BookSimTypeName}, DefaultRegistry.List())

	schema, err := DefaultRegistry.Get(BookSimTypeName)
	require.NoError(t, err)
	require.Same(t, params.Default(), schema)
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()

	custom, err := params.NewSchema([]params.ParameterSpec{{Name: "ports", Type: params.KindPositive, Default: 4}})
	require.NoError(t, err)

	require.NoError(t, reg.Register("merlin.hr_router", func() *params.Schema { return custom }))
	require.NoError(t, reg.Register(BookSimTypeName, params.Default))
	require.ErrorContains(t, reg.Register(BookSimTypeName, params.Default), "already registered")
	require.ErrorContains(t, reg.Register("booksim2", params.Default), "library.type")

	require.Equal(t, []string{BookSimTypeName, "merlin.hr_router"}, reg.List())

	got, err := reg.Get("merlin.hr_router")
	require.NoError(t, err)
	require.Same(t, custom, got)

	_, err = reg.Get("ember.nic")
	require.ErrorContains(t, err, "not found")
}
