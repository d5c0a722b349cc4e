package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/pwseed/pwseed-go/internal/config"
	"github.com/pwseed/pwseed-go/internal/crypto"
	"github.com/pwseed/pwseed-go/internal/model"
	"github.com/pwseed/pwseed-go/internal/repository"
	"github.com/pwseed/pwseed-go/internal/service"
	"github.com/pwseed/pwseed-go/internal/userfetch"
)

var errSelfTest = errors.New("self-test failed")

func newApp(cfg config.Config) *cli.App {
	return &cli.App{
		Name:  "pwseed",
		Usage: "generate tiered passwords and seed a user database",
		Commands: []*cli.Command{
			{
				Name:  "seed",
				Usage: "fetch random users and store them with generated passwords",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "count", Aliases: []string{"n"}, Value: cfg.SeedCount, Usage: "number of users to add"},
					&cli.StringFlag{Name: "driver", Value: cfg.DatabaseDriver, Usage: "database driver (sqlite or mysql)"},
					&cli.StringFlag{Name: "dsn", Value: cfg.DatabaseDSN, Usage: "database DSN or SQLite file path"},
					&cli.StringFlag{Name: "url", Value: cfg.RandomUserURL, Usage: "random user API URL"},
				},
				Action: func(c *cli.Context) error {
					return runSeed(c, cfg)
				},
			},
			{
				Name:  "generate",
				Usage: "print a password of the given length and tier",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "length", Aliases: []string{"l"}, Value: service.DefaultLength},
					&cli.IntFlag{Name: "tier", Aliases: []string{"t"}, Value: int(service.DefaultTier)},
				},
				Action: runGenerate,
			},
			{
				Name:      "classify",
				Usage:     "print the complexity tier of a password",
				ArgsUsage: "PASSWORD",
				Action:    runClassify,
			},
			{
				Name:   "selftest",
				Usage:  "check that generated passwords classify to the expected tiers",
				Action: runSelfTest,
			},
			{
				Name:  "token",
				Usage: "mint an operator token for the protected API routes",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "operator", Value: "admin"},
				},
				Action: func(c *cli.Context) error {
					token, err := crypto.GenerateToken(c.String("operator"), cfg.JWTSecret, cfg.JWTExpiry)
					if err != nil {
						return err
					}
					fmt.Fprintln(c.App.Writer, token)
					return nil
				},
			},
		},
	}
}

func runSeed(c *cli.Context, cfg config.Config) error {
	driver := c.String("driver")

	db, err := repository.NewDB(driver, c.String("dsn"))
	if err != nil {
		return err
	}
	defer db.Close()

	repo, err := repository.NewPersonRepository(db, driver)
	if err != nil {
		return err
	}

	fetcher := userfetch.NewClient(c.String("url"), cfg.FetchTimeout)
	svc := service.NewPeopleService(fetcher, repo, crypto.NewHasher(crypto.DefaultHashParams()), nil)

	resp, err := svc.Seed(c.Context, c.Int("count"))
	if err != nil {
		return err
	}

	return printSeeded(c.App.Writer, resp)
}

func printSeeded(w io.Writer, resp model.SeedResponse) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tLENGTH\tTIER\tCOMPLEXITY")
	for _, p := range resp.People {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\n", p.ID, p.Length, p.Tier, p.Complexity)
	}
	return tw.Flush()
}

func runGenerate(c *cli.Context) error {
	password, err := crypto.Generate(c.Int("length"), crypto.Tier(c.Int("tier")))
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, password)
	return nil
}

func runClassify(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("classify takes exactly one PASSWORD argument, got %d", c.NArg())
	}
	tier, err := crypto.Classify(c.Args().First())
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%d (%s)\n", int(tier), tier)
	return nil
}

// selfTestCases are generate/classify expectations, including both length
// overrides.
var selfTestCases = []struct {
	length int
	tier   crypto.Tier
	want   crypto.Tier
}{
	{5, crypto.TierLower, crypto.TierLower},
	{5, crypto.TierDigit, crypto.TierDigit},
	{5, crypto.TierUpper, crypto.TierUpper},
	{5, crypto.TierSymbol, crypto.TierSymbol},
	{9, crypto.TierLower, crypto.TierDigit},
	{9, crypto.TierDigit, crypto.TierUpper},
}

func runSelfTest(c *cli.Context) error {
	for _, tc := range selfTestCases {
		password, err := crypto.Generate(tc.length, tc.tier)
		if err != nil {
			return err
		}
		got, err := crypto.Classify(password)
		if err != nil || got != tc.want {
			fmt.Fprintln(c.App.Writer, "fail")
			return fmt.Errorf("%w: generate(%d, %d) = %q classified as %d, want %d",
				errSelfTest, tc.length, tc.tier, password, got, tc.want)
		}
	}
	fmt.Fprintln(c.App.Writer, "success")
	return nil
}
