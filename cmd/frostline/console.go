package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/appengine-ltd/frostline/internal/body"
	"github.com/appengine-ltd/frostline/internal/calendar"
	"github.com/appengine-ltd/frostline/internal/game"
	"github.com/appengine-ltd/frostline/internal/parser"
)

type console struct {
	session *game.Session
	parser  *parser.Parser
	in      *bufio.Scanner
	out     io.Writer
}

func newConsole(session *game.Session, in io.Reader, out io.Writer) *console {
	return &console{
		session: session,
		parser:  parser.New(),
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

func (c *console) run() error {
	fmt.Fprintf(c.out, "%s wakes up. Type help for commands.\n", c.session.Player.Name)
	c.printStatus()

	for {
		fmt.Fprint(c.out, "> ")
		if !c.in.Scan() {
			return c.in.Err()
		}
		intent := c.parser.Parse(c.in.Text())
		if intent.Verb == "" {
			if intent.Suggestion != "" {
				fmt.Fprintf(c.out, "Did you mean %q? Try help.\n", intent.Suggestion)
			} else if intent.Normalised != "" {
				fmt.Fprintln(c.out, "I don't know that one. Try help.")
			}
			continue
		}
		if intent.Verb == "quit" {
			fmt.Fprintln(c.out, "Goodbye.")
			return nil
		}
		c.dispatch(intent)
	}
}

func (c *console) dispatch(intent parser.Intent) {
	switch intent.Verb {
	case "help":
		for _, cmd := range c.parser.Commands() {
			fmt.Fprintf(c.out, "  %-8s %s\n", cmd.Canonical, cmd.Help)
		}
	case "status":
		c.printStatus()
	case "body":
		c.printBody()
	case "time":
		c.printTime()
	case "wait":
		c.doWait(intent.Args)
	case "sit":
		c.session.Player.Posture = game.PostureSitting
		fmt.Fprintln(c.out, "You sit down.")
	case "stand":
		c.session.Player.Posture = game.PostureStanding
		fmt.Fprintln(c.out, "You stand up.")
	case "fire":
		c.doFire(intent.Args)
	case "tend":
		c.doTend(intent.Args)
	case "douse":
		c.session.Fire.Douse()
		fmt.Fprintln(c.out, "The fire hisses out.")
	case "dress":
		c.session.Player.Clothing = game.ExpeditionClothing()
		fmt.Fprintln(c.out, "You pull on the expedition outfit.")
	case "strip":
		c.session.Player.Clothing = game.NoClothing()
		fmt.Fprintln(c.out, "You strip down. Brave.")
	case "reset":
		c.session.Player.Thermal.SetToNormal()
		fmt.Fprintln(c.out, "Body temperature reset to normal.")
	}
}

func (c *console) doWait(args []string) {
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		fmt.Fprintln(c.out, "Usage: wait <n> [minutes|hours|days]")
		return
	}
	unit := "minutes"
	if len(args) > 1 {
		unit = args[1]
	}

	var turns int
	switch unit {
	case "minute", "minutes", "min", "m":
		turns = calendar.Minutes(n)
	case "hour", "hours", "hr", "h":
		turns = calendar.Hours(n)
	case "day", "days", "d":
		turns = calendar.Days(n)
	default:
		fmt.Fprintln(c.out, "Usage: wait <n> [minutes|hours|days]")
		return
	}

	c.session.AdvanceTurns(turns)
	fmt.Fprintf(c.out, "%s passes.\n", capitalize(calendar.PrintDuration(turns)))
	c.printStatus()
}

func (c *console) doFire(args []string) {
	intensity, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(c.out, "Usage: fire <intensity> [fuel kg]")
		return
	}
	fuel := 5.0
	if len(args) > 1 {
		if fuel, err = strconv.ParseFloat(args[1], 64); err != nil {
			fmt.Fprintln(c.out, "Usage: fire <intensity> [fuel kg]")
			return
		}
	}
	if err := c.session.Fire.Light(intensity, fuel); err != nil {
		fmt.Fprintln(c.out, capitalize(err.Error())+".")
		return
	}
	fmt.Fprintf(c.out, "A fire crackles to life (intensity %d, %.1fkg of wood).\n", intensity, fuel)
}

func (c *console) doTend(args []string) {
	fuel := 2.0
	if len(args) > 0 {
		var err error
		if fuel, err = strconv.ParseFloat(args[0], 64); err != nil {
			fmt.Fprintln(c.out, "Usage: tend [fuel kg]")
			return
		}
	}
	if err := c.session.Fire.Tend(fuel); err != nil {
		fmt.Fprintln(c.out, capitalize(err.Error())+".")
		return
	}
	fmt.Fprintf(c.out, "You feed the fire %.1fkg of wood (intensity %d).\n", fuel, c.session.Fire.Intensity)
}

func (c *console) printStatus() {
	s := c.session
	env := s.CurrentEnvironment()
	fmt.Fprintf(c.out, "%s | %s, %dC, wind %dkph | %s\n",
		s.Calendar.PrintTime(), game.WeatherLabel(env.Weather.Type),
		env.Weather.TemperatureC, env.Weather.WindKph, s.Calendar.PartOfDay())

	if s.Fire.Lit {
		fmt.Fprintf(c.out, "Fire: intensity %d, %.1fkg of wood left.\n", s.Fire.Intensity, s.Fire.FuelKg)
	} else {
		fmt.Fprintln(c.out, "No fire.")
	}

	coldest, temp := s.Player.ColdestPart()
	fmt.Fprintf(c.out, "%s is %s. Coldest: %s at %s.\n",
		s.Player.Name, s.Player.Posture, coldest, formatBodyTemp(temp))
}

func (c *console) printBody() {
	fmt.Fprintf(c.out, "%-12s %8s %8s %8s %10s\n", "part", "current", "target", "bonus", "frostbite")
	for _, p := range body.Parts() {
		part := c.session.Player.Thermal.Part(p)
		fmt.Fprintf(c.out, "%-12s %8s %8s %8d %10s\n",
			p, formatBodyTemp(part.Current), formatBodyTemp(part.Converging),
			part.Bonus, humanize.Comma(int64(part.FrostbiteCounter)))
	}
}

func (c *console) printTime() {
	cal := c.session.Calendar
	fmt.Fprintf(c.out, "%s (turn %s)\n", cal.PrintTime(), humanize.Comma(int64(cal.Turn())))
	fmt.Fprintf(c.out, "Sunrise %s, sunset %s, %s, %s.\n",
		formatTurnOfDay(cal.Sunrise()), formatTurnOfDay(cal.Sunset()),
		cal.PartOfDay(), cal.Moon())
	fmt.Fprintf(c.out, "Daylight level %.0f, sunlight now %.0f.\n", cal.DaylightLevel(), cal.Sunlight())
}

// formatBodyTemp renders body units (hundredths of a degree) for humans.
func formatBodyTemp(units int) string {
	return fmt.Sprintf("%.2fC", float64(units)/100)
}

func formatTurnOfDay(turn int) string {
	return fmt.Sprintf("%02d:%02d", turn/calendar.TurnsPerHour, (turn%calendar.TurnsPerHour)/calendar.TurnsPerMinute)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
