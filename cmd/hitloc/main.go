package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rodaine/table"

	"github.com/KirkDiggler/cp2020-sheet/internal/config"
	"github.com/KirkDiggler/cp2020-sheet/internal/domain/hitlocation"
	"github.com/KirkDiggler/cp2020-sheet/internal/i18n"
	"github.com/KirkDiggler/cp2020-sheet/internal/numeric"
	"github.com/KirkDiggler/cp2020-sheet/internal/services"
	hitlocService "github.com/KirkDiggler/cp2020-sheet/internal/services/hitlocation"
	"github.com/KirkDiggler/cp2020-sheet/internal/textutil"
)

const maxRolls = 100

func main() {
	area := flag.String("area", "", "Aim at this area (Head, Torso, rArm, lArm, rLeg, lLeg)")
	lang := flag.String("lang", "", "Display language (defaults to SHEET_LANG)")
	actorName := flag.String("actor", "target", "Name of the actor being hit")
	count := flag.Int("n", 1, "Number of hits to resolve")
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider := services.NewProvider(&services.ProviderConfig{})

	actor, err := hitlocation.NewActor(textutil.ProperCase(*actorName), hitlocation.DefaultHitLocations())
	if err != nil {
		log.Fatalf("Failed to build actor: %v", err)
	}

	if *area != "" {
		fmt.Println(textutil.ReplaceIn(
			i18n.TryLocalize(loc, "AimedAt", "Aimed at "+textutil.Placeholder),
			i18n.TryLocalize(loc, *area, *area),
		))
	}

	tbl := table.New("#",
		i18n.TryLocalize(loc, "Roll", "Roll"),
		i18n.TryLocalize(loc, "Location", "Location"),
	).WithWriter(os.Stdout)

	n := numeric.Clamp(*count, 1, maxRolls)
	var last *hitlocService.Result
	for i := 1; i <= n; i++ {
		result, err := provider.HitLocationService.ResolveHitLocation(ctx, actor, *area)
		if err != nil {
			log.Fatalf("Failed to resolve hit location: %v", err)
		}

		last = result
		tbl.AddRow(strconv.Itoa(i), result.Roll.String(), i18n.ShortLocalize(loc, result.AreaHit))
	}
	tbl.Print()

	fmt.Println(i18n.LocalizeParam(loc, "HitLocationResult", map[string]any{
		"actor": actor.Name,
		"area":  i18n.TryLocalize(loc, last.AreaHit, last.AreaHit),
		"roll":  last.Roll.Total,
	}))
}
