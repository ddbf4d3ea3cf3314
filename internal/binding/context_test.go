package binding

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"daisy-generator/internal/board"
	"daisy-generator/internal/copyright"
	"daisy-generator/internal/diagnostic"
	"daisy-generator/internal/meta"
	"daisy-generator/internal/params"
)

var fixedCopyright = copyright.Formatter{Now: func() time.Time {
	return time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
}}

func ptr[T any](v T) *T { return &v }

func TestBuilder_PodScenario(t *testing.T) {
	hw := meta.Default().Daisy
	hw.SampleRate = ptr(44100.0)

	ctx, err := NewBuilder(WithCopyright(fixedCopyright)).Build(Input{
		Parameters:        params.Set{In: in("knob1"), Out: out("led1_green", params.NoteOut)},
		Capability:        pod(t),
		PatchName:         "Test",
		Hardware:          hw,
		NumOutputChannels: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, 32000, ctx.SampleRate)
	assert.Nil(t, ctx.BlockSize)
	assert.Equal(t, "HeavyDaisy_Test.hpp", ctx.Header)
	assert.Equal(t, "HeavyDaisy_Test.cpp", ctx.Source)
	assert.Equal(t, "DaisyPod", ctx.ClassName)
	assert.Equal(t, "Test", ctx.PatchName)
	assert.Equal(t, 2, ctx.MaxChannels)
	assert.Equal(t, 2, ctx.NumOutputChannels)
	assert.Equal(t, 2, ctx.OutputChannels)
	assert.True(t, ctx.HasMIDI)
	assert.False(t, ctx.DebugPrinting)
	assert.False(t, ctx.USBMIDI)
	assert.Equal(t, "/**\n * Copyright (c) 2024 Enzien Audio, Ltd.\n */\n", ctx.Copyright)

	require.Len(t, ctx.Inputs, 1)
	require.Len(t, ctx.Outputs, 1)
	assert.Equal(t, "led1_green", ctx.Outputs[0].Parameter)
	assert.Empty(t, ctx.Unbound, "protocol events are filtered before binding")

	assert.Equal(t, BuildContext{
		Name:         "Test",
		LibDaisyPath: "../../libdaisy",
	}, ctx.Build)
}

func TestBuilder_UserMetadata(t *testing.T) {
	hw := meta.HardwareMeta{
		SampleRate:    ptr(200000.0),
		BlockSize:     ptr(1024),
		DebugPrinting: true,
		USBMIDI:       true,
		LinkerScript:  "sram.lds",
		Bootloader:    "BOOT_QSPI",
		LibDaisyPath:  meta.ExplicitPath("/opt/libDaisy"),
	}

	ctx, err := NewBuilder().Build(Input{
		Capability:        resolve(t, "seed"),
		PatchName:         "Loud",
		Hardware:          hw,
		NumOutputChannels: 6,
		Copyright:         "Mine",
	})
	require.NoError(t, err)

	assert.Equal(t, 96000, ctx.SampleRate)
	require.NotNil(t, ctx.BlockSize)
	assert.Equal(t, 256, *ctx.BlockSize)
	assert.Equal(t, 1024, *hw.BlockSize)
	assert.True(t, ctx.DebugPrinting)
	assert.True(t, ctx.USBMIDI)
	assert.False(t, ctx.HasMIDI)
	assert.Equal(t, 6, ctx.NumOutputChannels)
	assert.Equal(t, 2, ctx.OutputChannels)
	assert.Contains(t, ctx.Copyright, " * Mine\n")
	assert.Equal(t, BuildContext{
		Name:          "Loud",
		LinkerScript:  "sram.lds",
		LibDaisyPath:  "/opt/libDaisy",
		Bootloader:    "BOOT_QSPI",
		DebugPrinting: true,
	}, ctx.Build)
}

func TestBuilder_MissingStructuralField(t *testing.T) {
	c, err := board.Parse([]byte("name: Partial\ncomponents: []\nchannels: 2\n"))
	require.NoError(t, err)

	_, err = NewBuilder().Build(Input{Capability: c, PatchName: "X"})
	require.Error(t, err)

	assert.ErrorIs(t, err, diagnostic.ErrStructuralBoard)
	assert.Contains(t, err.Error(), "aliases, has_midi")

	_, err = NewBuilder().Build(Input{PatchName: "X"})
	assert.ErrorIs(t, err, diagnostic.ErrStructuralBoard)
}

func TestBuilder_EmptyPatchName(t *testing.T) {
	_, err := NewBuilder().Build(Input{Capability: pod(t)})
	assert.ErrorIs(t, err, diagnostic.ErrBinding)
	assert.ErrorIs(t, err, ErrInvalidPatchName)
}

func TestValidatePatchName(t *testing.T) {
	for _, name := range []string{"Test", "synth_2", "_x", "A"} {
		assert.NoError(t, ValidatePatchName(name), name)
	}

	for _, name := range []string{"", "/../../x", "../x", "a/b", "2voice", "my patch", "x-y", "x.y"} {
		assert.ErrorIs(t, ValidatePatchName(name), ErrInvalidPatchName, name)
	}

	_, err := NewBuilder().Build(Input{Capability: pod(t), PatchName: "../escape"})
	require.ErrorIs(t, err, diagnostic.ErrBinding)
	assert.ErrorIs(t, err, ErrInvalidPatchName)
}

type stubBinder struct {
	glue Glue
	err  error
}

func (s stubBinder) Bind(params.Set, *board.Capability, map[string]string) (Glue, error) {
	return s.glue, s.err
}

func TestBuilder_BinderFailures(t *testing.T) {
	_, err := NewBuilder(WithBinder(stubBinder{err: errors.New("boom")})).
		Build(Input{Capability: pod(t), PatchName: "X"})
	assert.ErrorIs(t, err, diagnostic.ErrBinding)

	dup := Glue{Inputs: []InputBinding{
		{Parameter: "a", Component: "knob1"},
		{Parameter: "b", Component: "knob1"},
	}}
	_, err = NewBuilder(WithBinder(stubBinder{glue: dup})).
		Build(Input{Capability: pod(t), PatchName: "X"})
	require.ErrorIs(t, err, diagnostic.ErrBinding)
	assert.Contains(t, err.Error(), `control "knob1" bound to both "a" and "b"`)

	twice := Glue{Inputs: []InputBinding{
		{Parameter: "a", Component: "knob1"},
		{Parameter: "a", Component: "knob2"},
	}}
	_, err = NewBuilder(WithBinder(stubBinder{glue: twice})).
		Build(Input{Capability: pod(t), PatchName: "X"})
	assert.ErrorIs(t, err, diagnostic.ErrBinding)
}

func TestBuilder_LogsUnbound(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	ctx, err := NewBuilder(WithLogger(zap.New(core))).Build(Input{
		Parameters: params.Set{In: in("knb2")},
		Capability: pod(t),
		PatchName:  "X",
	})
	require.NoError(t, err)
	require.Len(t, ctx.Unbound, 1)

	entries := logs.FilterMessage("parameter not bound to any control").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "knb2", entries[0].ContextMap()["parameter"])
	assert.Equal(t, "knob2", entries[0].ContextMap()["closest_control"])
}

func TestBuilder_DoesNotMutateInput(t *testing.T) {
	set := params.Set{Out: out(params.BendOut, "led1_red")}

	_, err := NewBuilder().Build(Input{Parameters: set, Capability: pod(t), PatchName: "X"})
	require.NoError(t, err)
	assert.Len(t, set.Out, 2)
}
