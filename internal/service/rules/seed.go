package rules

import (
	"context"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/m04kA/astroya-scheduling/internal/domain"
	"github.com/m04kA/astroya-scheduling/pkg/types"
)

// SeedRule предустановленное правило из seed-файла
type SeedRule struct {
	Kind  domain.RuleKind
	Times []types.TimeString
}

type seedFile struct {
	Rules       map[string]yaml.Node `yaml:"predefined_availability_rules"`
	LegacyRules map[string]yaml.Node `yaml:"PREDEFINED_AVAILABILITY_RULES"`
}

// LoadSeedFile читает seed-файл (YAML или JSON).
// Значение правила: "UNAVAILABLE" или список времен. Записи другого вида
// возвращаются с пустым Kind и пропускаются при применении.
func LoadSeedFile(path string) (map[types.DateString]SeedRule, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrInvalidSeed, path, err)
	}
	return ParseSeed(raw)
}

// ParseSeed разбирает содержимое seed-файла
func ParseSeed(raw []byte) (map[types.DateString]SeedRule, error) {
	var file seedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}

	out := make(map[types.DateString]SeedRule, len(file.Rules)+len(file.LegacyRules))
	for date, node := range file.LegacyRules {
		out[types.DateString(date)] = seedRuleFromNode(&node)
	}
	for date, node := range file.Rules {
		out[types.DateString(date)] = seedRuleFromNode(&node)
	}
	return out, nil
}

func seedRuleFromNode(node *yaml.Node) SeedRule {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value == domain.RuleValueUnavailable {
			return SeedRule{Kind: domain.RuleFullyUnavailable}
		}
	case yaml.SequenceNode:
		var times []string
		if err := node.Decode(&times); err != nil {
			return SeedRule{}
		}
		rule := SeedRule{Kind: domain.RuleSpecificTimes}
		for _, t := range times {
			rule.Times = append(rule.Times, types.TimeString(t))
		}
		return rule
	}
	return SeedRule{}
}

// Seed применяет предустановленные правила и запоминает их для Reset.
// Невалидные записи пропускаются с предупреждением.
func (s *Service) Seed(ctx context.Context, rules map[types.DateString]SeedRule) (int, error) {
	s.seed = rules
	return s.applySeed(ctx, rules, true)
}

// SeedMissing применяет только правила на даты, для которых правила еще нет.
// Для постоянных хранилищ: изменения администратора переживают перезапуск.
func (s *Service) SeedMissing(ctx context.Context, rules map[types.DateString]SeedRule) (int, error) {
	return s.applySeed(ctx, rules, false)
}

func (s *Service) applySeed(ctx context.Context, rules map[types.DateString]SeedRule, overwrite bool) (int, error) {
	dates := make([]types.DateString, 0, len(rules))
	for date := range rules {
		dates = append(dates, date)
	}
	slices.Sort(dates)

	actor := domain.SeedActor
	applied := 0
	for _, date := range dates {
		seed := rules[date]

		rule, err := domain.NewRule(date, seed.Kind, seed.Times)
		if err != nil {
			s.logger.Warn("Seed: invalid rule format for date=%s, skipping: %v", date, err)
			continue
		}
		if !overwrite {
			existing, err := s.GetRule(ctx, date)
			if err != nil {
				return applied, err
			}
			if existing != nil {
				continue
			}
		}

		rule.UpdatedBy = &actor
		rule.UpdatedAt = s.now().UTC()

		if err := s.ruleRepo.Upsert(ctx, rule); err != nil {
			s.logger.Error("Seed: repository error for date=%s: %v", date, err)
			return applied, fmt.Errorf("%w: Seed: %v", domain.ErrStoreUnavailable, err)
		}
		applied++
	}

	s.logger.Info("Seed: applied %d of %d predefined rules", applied, len(rules))
	return applied, nil
}
