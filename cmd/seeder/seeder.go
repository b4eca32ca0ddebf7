package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/Dosada05/chess-registry/models"
	"github.com/Dosada05/chess-registry/services"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "seeder",
		Usage: "load sample federations, players, tournaments and results into a running chess registry",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api",
				Value:   "http://localhost:8080/api",
				Usage:   "base URL of the API",
				EnvVars: []string{"SEED_API_URL"},
			},
			&cli.IntFlag{
				Name:  "fake",
				Usage: "number of generated players to add on top of the sample data",
			},
			&cli.BoolFlag{
				Name:  "results",
				Value: true,
				Usage: "record generated standings for every created tournament",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "random seed for generated data (0 picks one from the clock)",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: 10 * time.Second,
				Usage: "per-request timeout",
			},
		},
		Action: func(c *cli.Context) error {
			logger, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			seed := c.Int64("seed")
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			s := &seeder{
				baseURL: strings.TrimRight(c.String("api"), "/"),
				client:  &http.Client{Timeout: c.Duration("timeout")},
				faker:   gofakeit.New(uint64(seed)),
				logger:  logger.Sugar(),
			}
			summary, err := s.run(c.Context, c.Int("fake"), c.Bool("results"))
			if err != nil {
				return err
			}
			s.logger.Infow("seeding finished",
				"federations", summary.Federations,
				"players", summary.Players,
				"tournaments", summary.Tournaments,
				"results", summary.Results,
				"failed", summary.Failed,
			)
			return nil
		},
	}
}

type seeder struct {
	baseURL string
	client  *http.Client
	faker   *gofakeit.Faker
	logger  *zap.SugaredLogger
}

type summary struct {
	Federations int
	Players     int
	Tournaments int
	Results     int
	Failed      int
}

// run posts every record and keeps going past individual failures, such as
// federations that already exist from an earlier run.
func (s *seeder) run(ctx context.Context, fakePlayers int, withResults bool) (*summary, error) {
	sum := &summary{}

	for _, f := range sampleFederations {
		var created models.Federation
		if err := s.post(ctx, "/federations", f, &created); err != nil {
			s.logger.Warnw("federation not created", "code", f.Code, "error", err)
			sum.Failed++
			continue
		}
		sum.Federations++
	}

	playerInputs := append([]services.PlayerInput{}, samplePlayers...)
	for i := 0; i < fakePlayers; i++ {
		playerInputs = append(playerInputs, s.fakePlayer())
	}

	var players []models.Player
	for _, p := range playerInputs {
		var created models.Player
		if err := s.post(ctx, "/players", p, &created); err != nil {
			s.logger.Warnw("player not created", "name", p.Name, "error", err)
			sum.Failed++
			continue
		}
		players = append(players, created)
		sum.Players++
	}

	var tournaments []models.Tournament
	for _, t := range sampleTournaments {
		var created models.Tournament
		if err := s.post(ctx, "/tournaments", t, &created); err != nil {
			s.logger.Warnw("tournament not created", "name", t.Name, "error", err)
			sum.Failed++
			continue
		}
		tournaments = append(tournaments, created)
		sum.Tournaments++
	}

	if !withResults || len(players) == 0 {
		return sum, nil
	}

	for _, t := range tournaments {
		for _, r := range s.standings(t, players) {
			var created models.TournamentResult
			if err := s.post(ctx, "/tournament-results", r, &created); err != nil {
				s.logger.Warnw("result not created", "tournament", t.Name, "error", err)
				sum.Failed++
				continue
			}
			sum.Results++
		}
	}

	return sum, nil
}

func (s *seeder) fakePlayer() services.PlayerInput {
	titles := []string{"GM", "IM", "FM", "CM", "WGM", "WIM", "WFM", "WCM", "", "", ""}
	return services.PlayerInput{
		Name:       s.faker.Name(),
		Federation: sampleFederations[s.faker.Number(0, len(sampleFederations)-1)].Code,
		Rating:     s.faker.Number(1200, 2700),
		Title:      models.Title(s.faker.RandomString(titles)),
		BirthYear:  year(s.faker.Number(1950, 2012)),
	}
}

// standings draws a field of up to twelve players and hands out decreasing
// scores that fit the tournament's round count.
func (s *seeder) standings(t models.Tournament, players []models.Player) []services.ResultInput {
	field := append([]models.Player{}, players...)
	s.faker.ShuffleAnySlice(field)
	if len(field) > 12 {
		field = field[:12]
	}

	points := float64(t.Rounds) - 0.5*float64(s.faker.Number(1, 4))
	results := make([]services.ResultInput, 0, len(field))
	for i, p := range field {
		if points < 0 {
			points = 0
		}
		performance := p.Rating + s.faker.Number(-150, 150)
		results = append(results, services.ResultInput{
			TournamentID:      t.ID,
			PlayerID:          p.ID,
			Points:            points,
			Rank:              i + 1,
			Tiebreak1:         float64(s.faker.Number(40, 80)) / 2,
			Tiebreak2:         float64(s.faker.Number(20, 60)) / 2,
			PerformanceRating: &performance,
		})
		points -= 0.5 * float64(s.faker.Number(0, 2))
	}
	return results
}

func (s *seeder) post(ctx context.Context, path string, body, dst any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("POST %s: %s: %s", path, resp.Status, strings.TrimSpace(string(data)))
	}
	return json.Unmarshal(data, dst)
}
