package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/elemental/common"
)

func main() {
	allAbilities := flag.Bool("ab", false, "start with all abilities unlocked")
	debug := flag.Bool("debug", false, "enable debug mode")
	fly := flag.Bool("fly", false, "jump in mid-air without limit")
	immortal := flag.Bool("immortal", false, "ignore hazards")
	fresh := flag.Bool("fresh", false, "forget saved progress")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "", "start in the named level instead of the saved checkpoint")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("elemental")
	ebiten.SetTPS(common.TicksPerSecond)

	game, err := NewGame(Options{
		Debug:     *debug,
		Abilities: *allAbilities,
		Fly:       *fly,
		Immortal:  *immortal,
		Level:     *levelName,
		Fresh:     *fresh,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
