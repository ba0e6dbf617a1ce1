// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package ansiblock

import (
	"reflect"
	"testing"

	"github.com/framegrace/pixelterm/internal/cellmodel"
	"github.com/framegrace/pixelterm/internal/palette"
)

func u8(s string) Block {
	return Utf8Block{Bytes: cellmodel.NewUtf8Block([]byte(s))}
}

func TestPlainASCII(t *testing.T) {
	bs := NewBlockStream()
	got := bs.Consume([]byte("hi\n"))
	want := []Block{u8("h"), u8("i"), u8("\n")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestColorAndReset(t *testing.T) {
	bs := NewBlockStream()
	got := bs.Consume([]byte("\x1B[31mA\x1B[0mB"))
	want := []Block{
		GraphicsForeground{Color: palette.From8(1)},
		u8("A"),
		GraphicsReset{},
		u8("B"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestTruecolorForeground(t *testing.T) {
	bs := NewBlockStream()
	got := bs.Consume([]byte("\x1B[38;2;10;20;30mZ"))
	want := []Block{
		GraphicsForeground{Color: palette.Color{R: 10, G: 20, B: 30}},
		u8("Z"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func Test256ColorBackground(t *testing.T) {
	bs := NewBlockStream()
	got := bs.Consume([]byte("\x1B[48;5;46mX"))
	want := []Block{
		GraphicsBackground{Color: palette.From256(46)},
		u8("X"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestPartialMultibyteAcrossCalls(t *testing.T) {
	bs := NewBlockStream()
	if got := bs.Consume([]byte("\xE2")); len(got) != 0 {
		t.Fatalf("expected no blocks yet, got %#v", got)
	}
	got := bs.Consume([]byte("\x9C\x93"))
	want := []Block{u8("\xE2\x9C\x93")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestStrayContinuationByte(t *testing.T) {
	bs := NewBlockStream()
	got := bs.Consume([]byte("\x80"))
	want := []Block{Utf8Block{Bytes: cellmodel.StrayContinuation}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestCSISplitAcrossCalls(t *testing.T) {
	bs := NewBlockStream()
	if got := bs.Consume([]byte("\x1B[")); len(got) != 0 {
		t.Fatalf("expected no blocks yet, got %#v", got)
	}
	got := bs.Consume([]byte("31m"))
	want := []Block{GraphicsForeground{Color: palette.From8(1)}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestConsumeIsAssociativeAcrossAnyPartition(t *testing.T) {
	stream := []byte("\x1B[1;31mhi\x1B[0m\n\xE2\x9C\x93\x1B[38;5;200mZ")

	whole := NewBlockStream().Consume(stream)

	splits := [][]int{
		{1, 2, 3},
		{5, 1, len(stream) - 6},
		{len(stream)},
	}
	for _, cuts := range splits {
		bs := NewBlockStream()
		var got []Block
		pos := 0
		for _, c := range cuts {
			end := pos + c
			if end > len(stream) {
				end = len(stream)
			}
			got = append(got, bs.Consume(stream[pos:end])...)
			pos = end
		}
		if pos < len(stream) {
			got = append(got, bs.Consume(stream[pos:])...)
		}
		if !reflect.DeepEqual(got, whole) {
			t.Errorf("split %v: got %#v, want %#v", cuts, got, whole)
		}
	}
}

func TestCSIMoreThan64ParamsIgnoredPastLimit(t *testing.T) {
	bs := NewBlockStream()
	seq := "\x1B["
	for i := 0; i < 70; i++ {
		if i > 0 {
			seq += ";"
		}
		seq += "31"
	}
	seq += "m"

	got := bs.Consume([]byte(seq))
	if len(got) != MaxArgs {
		t.Fatalf("expected %d blocks (one per retained slot), got %d", MaxArgs, len(got))
	}
	for _, blk := range got {
		fg, ok := blk.(GraphicsForeground)
		if !ok || fg.Color != palette.From8(1) {
			t.Fatalf("expected all args to parse as GraphicsForeground(red), got %#v", blk)
		}
	}
}

func TestUnknownFinalByteAbandonsSequence(t *testing.T) {
	bs := NewBlockStream()
	got := bs.Consume([]byte("\x1B[1h\x1B[31mA"))
	want := []Block{
		GraphicsForeground{Color: palette.From8(1)},
		u8("A"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestEraseAllBlock(t *testing.T) {
	bs := NewBlockStream()
	got := bs.Consume([]byte("\x1B[2J"))
	want := []Block{EraseDisplay{Type: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}
