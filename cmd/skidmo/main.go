// Command skidmo is the terminal front end for the marketplace client. Each
// subcommand maps to one use case; output is plain text for humans.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"skidmo-client/internal"
	"skidmo-client/internal/contextkeys"
	"skidmo-client/internal/core/domain"

	"github.com/google/uuid"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	app, err := internal.NewApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "skidmo: %v\n", err)
		os.Exit(1)
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = contextkeys.ContextWithLogger(ctx, app.Logger)
	ctx = contextkeys.ContextWithTraceID(ctx, uuid.New().String())

	if err := run(ctx, app, os.Args[1], os.Args[2:]); err != nil {
		if verrs, ok := domain.AsValidationErrors(err); ok {
			fmt.Fprintln(os.Stderr, "The listing cannot be published yet:")
			for _, field := range verrs.Fields() {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", field, verrs[field])
			}
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "skidmo: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, app *internal.App, command string, args []string) error {
	switch command {
	case "login":
		return runLogin(ctx, app, args)
	case "logout":
		return app.Session.Clear()
	case "feed":
		return runFeed(ctx, app)
	case "search":
		return runSearch(ctx, app, args)
	case "count":
		return runCount(ctx, app, args)
	case "get":
		return runGet(ctx, app, args)
	case "publish":
		return runPublish(ctx, app, args)
	case "my":
		return runMy(ctx, app)
	case "reservations":
		return runReservations(ctx, app)
	case "reserve":
		return runReserve(ctx, app, args)
	case "threads":
		return runThreads(ctx, app)
	case "send":
		return runSend(ctx, app, args)
	case "help", "-h", "--help":
		usage()
		return nil
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `Usage: skidmo <command> [flags]

Commands:
  login -email <email> -password <password>   authenticate and store the session
  logout                                      forget the stored session
  feed                                        browse the combined listing feed
  search [filter flags]                       filter listings
  count [filter flags]                        count matching listings
  get -type <TYPE> -id <ID>                   fetch one listing
  publish -draft <file.json>                  validate and publish a draft
  my                                          list your own properties
  reservations                                list your reservations
  reserve -property <ID> -type <TYPE> -in <RFC3339> -out <RFC3339> -guests <N>
  threads                                     list message threads
  send -thread <ID> -body <text>              send a message
`)
}

func runLogin(ctx context.Context, app *internal.App, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	if *email == "" || *password == "" {
		return fmt.Errorf("login requires -email and -password")
	}

	session, err := app.Login.Execute(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s\n", session.Claims.Email)
	return nil
}

func runFeed(ctx context.Context, app *internal.App) error {
	feed, err := app.BrowseFeed.Execute(ctx)
	if err != nil {
		return err
	}
	if feed.Degraded {
		fmt.Println("(showing placeholders: the feed could not be fetched)")
	}
	printSummaries(feed.Summaries)
	return nil
}

// filterFlags registers the shared filter criteria flags and returns a
// builder that reads them after parsing.
func filterFlags(fs *flag.FlagSet) func() domain.FilterCriteria {
	propertyType := fs.String("type", "", "property type (HOUSE, BOARDING, APARTMENT, COMMERCIAL, LODGE_HOTEL)")
	purpose := fs.String("purpose", "", "purpose (RENT, BUY, RENT_BUY)")
	term := fs.String("term", "", "term category (SHORT, LONG)")
	minPrice := fs.Float64("min-price", -1, "minimum price")
	maxPrice := fs.Float64("max-price", -1, "maximum price")
	minBedrooms := fs.Int("min-bedrooms", -1, "minimum bedrooms")
	maxBedrooms := fs.Int("max-bedrooms", -1, "maximum bedrooms")
	pool := fs.String("pool", "", "has pool (true/false)")
	amenities := fs.String("amenities", "", "comma-separated lodge amenity flags")

	return func() domain.FilterCriteria {
		c := domain.FilterCriteria{
			PropertyType: domain.PropertyType(*propertyType),
			Purpose:      domain.Purpose(*purpose),
			TermCategory: domain.TermCategory(*term),
		}
		if *minPrice >= 0 {
			c.MinPrice = minPrice
		}
		if *maxPrice >= 0 {
			c.MaxPrice = maxPrice
		}
		if *minBedrooms >= 0 {
			c.MinBedrooms = minBedrooms
		}
		if *maxBedrooms >= 0 {
			c.MaxBedrooms = maxBedrooms
		}
		if *pool != "" {
			value := *pool == "true"
			c.HasPool = &value
		}
		if *amenities != "" {
			c.EntertainmentAmenities = strings.Split(*amenities, ",")
		}
		return c
	}
}

func runSearch(ctx context.Context, app *internal.App, args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	criteria := filterFlags(fs)
	fs.Parse(args)

	summaries, err := app.Search.Execute(ctx, criteria())
	if err != nil {
		return err
	}
	printSummaries(summaries)
	return nil
}

func runCount(ctx context.Context, app *internal.App, args []string) error {
	fs := flag.NewFlagSet("count", flag.ExitOnError)
	criteria := filterFlags(fs)
	fs.Parse(args)

	done := make(chan domain.CountResult, 1)
	app.LiveCount.Request(ctx, criteria(), func(result domain.CountResult) {
		done <- result
	})

	select {
	case result := <-done:
		if !result.Known {
			fmt.Println("Count unavailable")
			return nil
		}
		fmt.Printf("Show %d Listings\n", result.Count)
		return nil
	case <-time.After(app.Config.CountDebounce + 10*time.Second):
		return fmt.Errorf("count request timed out")
	case <-ctx.Done():
		return ctx.Err()
	}
}

func runGet(ctx context.Context, app *internal.App, args []string) error {
	fs := flag.NewFlagSet("get", flag.ExitOnError)
	propertyType := fs.String("type", "", "property type")
	id := fs.String("id", "", "listing id")
	fs.Parse(args)

	if *propertyType == "" || *id == "" {
		return fmt.Errorf("get requires -type and -id")
	}

	detail, err := app.GetListing.Execute(ctx, domain.PropertyType(*propertyType), *id)
	if err != nil {
		return err
	}

	general := detail.Property.General
	price := domain.ResolvePriceDetail(general.Purpose, general.TermCategory, general.RentalPrice, general.SalePrice)
	fmt.Printf("%s\n%s\n%s\n", general.Title, general.Address, price.Display())
	if general.Description != "" {
		fmt.Println(general.Description)
	}
	fmt.Printf("route: %s\n", detail.Route)
	return nil
}

func runPublish(ctx context.Context, app *internal.App, args []string) error {
	fs := flag.NewFlagSet("publish", flag.ExitOnError)
	draftPath := fs.String("draft", "", "path to a draft JSON file")
	fs.Parse(args)

	if *draftPath == "" {
		return fmt.Errorf("publish requires -draft")
	}
	data, err := os.ReadFile(*draftPath)
	if err != nil {
		return fmt.Errorf("failed to read draft: %w", err)
	}
	var draft domain.ListingDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return fmt.Errorf("failed to parse draft: %w", err)
	}

	created, err := app.Publish.Execute(ctx, draft)
	if err != nil {
		return err
	}
	fmt.Printf("Published %s listing %s\n", created.General.PropertyType, created.General.ID)
	return nil
}

func runMy(ctx context.Context, app *internal.App) error {
	summaries, err := app.MyProps.Execute(ctx)
	if err != nil {
		return err
	}
	printSummaries(summaries)
	return nil
}

func runReservations(ctx context.Context, app *internal.App) error {
	reservations, err := app.Reservations.Execute(ctx)
	if err != nil {
		return err
	}
	for _, r := range reservations {
		fmt.Printf("%-8s %-12s %s -> %s  %d guests  %s\n",
			r.ID, r.PropertyID,
			r.CheckIn.Format("2006-01-02"), r.CheckOut.Format("2006-01-02"),
			r.Guests, r.Status)
	}
	return nil
}

func runReserve(ctx context.Context, app *internal.App, args []string) error {
	fs := flag.NewFlagSet("reserve", flag.ExitOnError)
	property := fs.String("property", "", "listing id")
	propertyType := fs.String("type", "", "property type")
	checkIn := fs.String("in", "", "check-in (RFC3339)")
	checkOut := fs.String("out", "", "check-out (RFC3339)")
	guests := fs.Int("guests", 1, "number of guests")
	fs.Parse(args)

	in, err := time.Parse(time.RFC3339, *checkIn)
	if err != nil {
		return fmt.Errorf("invalid -in: %w", err)
	}
	out, err := time.Parse(time.RFC3339, *checkOut)
	if err != nil {
		return fmt.Errorf("invalid -out: %w", err)
	}

	reservation, err := app.NewReservation.Execute(ctx, domain.ReservationRequest{
		PropertyID:   *property,
		PropertyType: domain.PropertyType(*propertyType),
		CheckIn:      in,
		CheckOut:     out,
		Guests:       *guests,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Reservation %s is %s\n", reservation.ID, reservation.Status)
	return nil
}

func runThreads(ctx context.Context, app *internal.App) error {
	threads, err := app.Threads.Execute(ctx)
	if err != nil {
		return err
	}
	for _, t := range threads {
		fmt.Printf("%-8s %s\n", t.ID, t.LastMessage)
	}
	return nil
}

func runSend(ctx context.Context, app *internal.App, args []string) error {
	fs := flag.NewFlagSet("send", flag.ExitOnError)
	thread := fs.String("thread", "", "thread id")
	body := fs.String("body", "", "message body")
	fs.Parse(args)

	if *thread == "" || *body == "" {
		return fmt.Errorf("send requires -thread and -body")
	}
	message, err := app.SendMessage.Execute(ctx, *thread, *body)
	if err != nil {
		return err
	}
	fmt.Printf("Sent %s\n", message.ID)
	return nil
}
func printSummaries(summaries []domain.PropertySummary) {
	for _, s := range summaries {
		stars := ""
		if s.StarRating > 0 {
			stars = fmt.Sprintf("  %d*", s.StarRating)
		}
		fmt.Printf("%-10s %-12s %-22s %s%s\n    %s\n", s.ID, s.PropertyType, s.Price, s.Title, stars, s.Address)
	}
}
