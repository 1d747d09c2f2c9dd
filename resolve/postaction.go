package resolve

import (
	"context"

	"github.com/randalmurphal/ragforge/config"
	"github.com/randalmurphal/ragforge/prefs"
)

// OffersRunApp reports whether the generated project could start cleanly
// right after scaffolding, which is what makes "run the app" a sensible
// post-generation action. Anything that needs manual setup first, a
// provisioned database, a missing API key, an unconfigured tool, rules
// it out.
func OffersRunApp(s State) bool {
	if s.Cfg.LlamaPack != "" {
		return false
	}
	if s.Cfg.VectorDB != "" && s.Cfg.VectorDB != config.VectorDBNone {
		return false
	}
	if providerKey(s) == "" {
		return false
	}
	if s.Cfg.DataSource != nil && s.Cfg.DataSource.LlamaParseEnabled() && llamaCloudKey(s) == "" {
		return false
	}
	if s.Cfg.HasToolRequiringConfig() {
		return false
	}
	return true
}

func (r *Resolver) postActionStep() Step {
	return Step{
		Name:      "post-action",
		AppliesIf: func(s State) bool { return s.Cfg.PostAction == "" },
		Run: func(ctx context.Context, s State) (State, error) {
			values := []string{
				string(config.PostActionNone),
				string(config.PostActionVSCode),
				string(config.PostActionDeps),
			}
			if OffersRunApp(s) {
				values = append(values, string(config.PostActionRun))
			}
			def := string(DefaultPostAction)
			v, err := r.choose(ctx, s, prefs.KeyPostAction,
				"How would you like to proceed?", values, def)
			if err != nil {
				return s, err
			}
			s.Cfg.PostAction = config.PostAction(v)
			return s, nil
		},
	}
}
