package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/rodaine/table"

	"github.com/KirkDiggler/cp2020-sheet/internal/config"
	"github.com/KirkDiggler/cp2020-sheet/internal/i18n"
	"github.com/KirkDiggler/cp2020-sheet/internal/paths"
	"github.com/KirkDiggler/cp2020-sheet/internal/services"
	"github.com/KirkDiggler/cp2020-sheet/internal/services/skills"
	"github.com/KirkDiggler/cp2020-sheet/internal/textutil"
)

func main() {
	lang := flag.String("lang", "", "Skill pack language (defaults to SHEET_LANG)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *lang == "" {
		*lang = cfg.Sheet.Lang
	}

	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}
	loc := bundle.Localizer(*lang)

	ctx := context.Background()

	store, err := services.OpenPackStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open pack store: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("Error closing %s store: %v", store.Backend, err)
		}
	}()

	provider := services.NewProvider(&services.ProviderConfig{
		PackRepository: store.Repository,
		SkillCacheTTL:  cfg.Sheet.SkillCacheTTL,
	})

	records, err := provider.SkillService.DefaultSkills(ctx, *lang)
	if err != nil {
		log.Printf("Failed to load skills: %v", err)
		return
	}

	fmt.Printf("%s (%s)\n", provider.SkillService.PackForLanguage(*lang), store.Backend)

	tbl := table.New(
		i18n.TryLocalize(loc, "Skill", "Skill"),
		i18n.TryLocalize(loc, "Stat", "Stat"),
		i18n.TryLocalize(loc, "Level", "Level"),
	).WithWriter(os.Stdout)

	for _, record := range records {
		name, _ := record["name"].(string)
		if key, ok := paths.Lookup(record, skills.LocalizationKeyPath); ok {
			if k, isString := key.(string); isString && loc.Has(k) {
				name = loc.Localize(k)
			}
		}

		stat := ""
		if value, ok := paths.Lookup(record, "system.stat"); ok {
			if s, isString := value.(string); isString {
				stat = i18n.ShortLocalize(loc, textutil.ProperCase(s))
			}
		}

		level, _ := paths.Lookup(record, "system.level")
		tbl.AddRow(name, stat, level)
	}
	tbl.Print()
}
