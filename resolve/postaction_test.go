package resolve

import (
	"fmt"
	"testing"

	"github.com/randalmurphal/ragforge/catalog"
	"github.com/randalmurphal/ragforge/config"
)

// TestOffersRunApp_AllCombinations walks every combination of the five
// gating inputs and checks the gate against the expected conjunction: run is
// offered only when nothing about the plan needs manual setup first.
func TestOffersRunApp_AllCombinations(t *testing.T) {
	weather, _ := catalog.ToolByName("weather")

	for bits := 0; bits < 32; bits++ {
		packChosen := bits&1 != 0
		realVectorDB := bits&2 != 0
		keyPresent := bits&4 != 0
		parseKeyMissing := bits&8 != 0
		toolNeedsConfig := bits&16 != 0

		name := fmt.Sprintf("pack=%v db=%v key=%v parse=%v tool=%v",
			packChosen, realVectorDB, keyPresent, parseKeyMissing, toolNeedsConfig)

		t.Run(name, func(t *testing.T) {
			s := State{Cfg: config.Config{VectorDB: config.VectorDBNone}}

			if packChosen {
				s.Cfg.LlamaPack = "rag-evaluator"
			}
			if realVectorDB {
				s.Cfg.VectorDB = config.VectorDBMongo
			}
			if keyPresent {
				s.Cfg.ProviderKey = "sk-test"
			}
			if parseKeyMissing {
				enabled := true
				ds := config.FileSource("data/report.pdf")
				ds.Config.UseLlamaParse = &enabled
				s.Cfg.DataSource = ds
			}
			if toolNeedsConfig {
				s.Cfg.Tools = []config.Tool{weather}
			}

			want := !packChosen && !realVectorDB && keyPresent &&
				!parseKeyMissing && !toolNeedsConfig
			if got := OffersRunApp(s); got != want {
				t.Errorf("OffersRunApp() = %v, want %v", got, want)
			}
		})
	}
}

// Edge cases the grid's bit encoding cannot reach.
func TestOffersRunApp_EdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  bool
	}{
		{
			name: "vector db unset counts as none",
			state: State{Cfg: config.Config{
				ProviderKey: "sk-test",
			}},
			want: true,
		},
		{
			name: "provider key from environment",
			state: State{
				Cfg: config.Config{VectorDB: config.VectorDBNone},
				Env: Env{OpenAIKey: "sk-env"},
			},
			want: true,
		},
		{
			name: "llamaparse enabled with key available",
			state: func() State {
				enabled := true
				ds := config.FileSource("data/report.pdf")
				ds.Config.UseLlamaParse = &enabled
				return State{
					Cfg: config.Config{
						ProviderKey: "sk-test",
						VectorDB:    config.VectorDBNone,
						DataSource:  ds,
					},
					Env: Env{LlamaCloudKey: "llx-test"},
				}
			}(),
			want: true,
		},
		{
			name: "tool without extra config",
			state: func() State {
				wiki, _ := catalog.ToolByName("wikipedia")
				return State{Cfg: config.Config{
					ProviderKey: "sk-test",
					VectorDB:    config.VectorDBNone,
					Tools:       []config.Tool{wiki},
				}}
			}(),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OffersRunApp(tt.state); got != tt.want {
				t.Errorf("OffersRunApp() = %v, want %v", got, tt.want)
			}
		})
	}
}
