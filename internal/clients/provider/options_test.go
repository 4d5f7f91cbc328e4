package provider

import "testing"

func TestOptions_WithOverrides(t *testing.T) {
	t.Run("map_wins_over_top_level", func(t *testing.T) {
		base := Options{Model: "m1", Width: 512, Height: 512, Steps: 20}
		got := base.WithOverrides(map[string]any{
			"model": "m2",
			// JSON numbers decode as float64
			"width": float64(1024),
			"steps": float64(50),
		})
		if got.Model != "m2" {
			t.Fatalf("model: got %q", got.Model)
		}
		if got.Width != 1024 {
			t.Fatalf("width: got %d", got.Width)
		}
		if got.Height != 512 {
			t.Fatalf("height: got %d, expected untouched", got.Height)
		}
		if got.Steps != 50 {
			t.Fatalf("steps: got %d", got.Steps)
		}
	})

	t.Run("nil_map_is_noop", func(t *testing.T) {
		base := Options{Model: "m1", CfgScale: 7}
		if got := base.WithOverrides(nil); got != base {
			t.Fatalf("got %+v want %+v", got, base)
		}
	})

	t.Run("unknown_keys_ignored", func(t *testing.T) {
		base := Options{Width: 512}
		got := base.WithOverrides(map[string]any{"negative_prompt": "blurry", "seed": float64(7)})
		if got != base {
			t.Fatalf("got %+v want %+v", got, base)
		}
	})

	t.Run("wrong_types_ignored", func(t *testing.T) {
		base := Options{Width: 512, Model: "m1"}
		got := base.WithOverrides(map[string]any{"width": "wide", "model": 3})
		if got != base {
			t.Fatalf("got %+v want %+v", got, base)
		}
	})

	t.Run("cfg_scale_and_samples", func(t *testing.T) {
		got := Options{}.WithOverrides(map[string]any{"cfg_scale": 9.5, "samples": float64(2)})
		if got.CfgScale != 9.5 || got.Samples != 2 {
			t.Fatalf("got %+v", got)
		}
	})
}
