package main

import (
	"time"

	"github.com/Dosada05/chess-registry/models"
	"github.com/Dosada05/chess-registry/services"
)

func year(y int) *int { return &y }

func day(s string) models.Timestamp {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return models.Timestamp(t)
}

var sampleFederations = []services.CreateFederationInput{
	{Code: "USA", Name: "United States of America"},
	{Code: "GER", Name: "Germany"},
	{Code: "RUS", Name: "Russia"},
	{Code: "IND", Name: "India"},
	{Code: "NOR", Name: "Norway"},
	{Code: "CHN", Name: "China"},
	{Code: "FRA", Name: "France"},
	{Code: "ESP", Name: "Spain"},
	{Code: "ITA", Name: "Italy"},
	{Code: "POL", Name: "Poland"},
}

var samplePlayers = []services.PlayerInput{
	{Name: "Magnus Carlsen", Federation: "NOR", Rating: 2830, Title: models.TitleGM, BirthYear: year(1990)},
	{Name: "Fabiano Caruana", Federation: "USA", Rating: 2805, Title: models.TitleGM, BirthYear: year(1992)},
	{Name: "Ding Liren", Federation: "CHN", Rating: 2788, Title: models.TitleGM, BirthYear: year(1992)},
	{Name: "Ian Nepomniachtchi", Federation: "RUS", Rating: 2771, Title: models.TitleGM, BirthYear: year(1990)},
	{Name: "Vishwanathan Anand", Federation: "IND", Rating: 2754, Title: models.TitleGM, BirthYear: year(1969)},
	{Name: "Alexander Grischuk", Federation: "RUS", Rating: 2745, Title: models.TitleGM, BirthYear: year(1983)},
	{Name: "Maxime Vachier-Lagrave", Federation: "FRA", Rating: 2742, Title: models.TitleGM, BirthYear: year(1990)},
	{Name: "Anish Giri", Federation: "GER", Rating: 2739, Title: models.TitleGM, BirthYear: year(1994)},
	{Name: "Wesley So", Federation: "USA", Rating: 2735, Title: models.TitleGM, BirthYear: year(1993)},
	{Name: "Levon Aronian", Federation: "USA", Rating: 2732, Title: models.TitleGM, BirthYear: year(1982)},
	{Name: "Anna Schmidt", Federation: "GER", Rating: 2245, Title: models.TitleWIM, BirthYear: year(1995)},
	{Name: "Maria Garcia", Federation: "ESP", Rating: 2178, Title: models.TitleWFM, BirthYear: year(1998)},
	{Name: "John Davis", Federation: "USA", Rating: 1987, Title: models.TitleNone, BirthYear: year(1985)},
	{Name: "Pietro Rossi", Federation: "ITA", Rating: 2134, Title: models.TitleFM, BirthYear: year(1991)},
	{Name: "Kowalski Jan", Federation: "POL", Rating: 2067, Title: models.TitleCM, BirthYear: year(1989)},
}

var sampleTournaments = []services.TournamentInput{
	{
		Name: "World Chess Championship 2024", Location: "Singapore",
		StartDate: day("2024-01-15T09:00:00Z"), EndDate: day("2024-01-28T18:00:00Z"),
		Rounds: 14, TimeControl: "120+30", Arbiter: "IA David Martinez",
	},
	{
		Name: "Tata Steel Masters 2024", Location: "Wijk aan Zee, Netherlands",
		StartDate: day("2024-01-13T14:00:00Z"), EndDate: day("2024-01-28T16:00:00Z"),
		Rounds: 13, TimeControl: "100+30", Arbiter: "IA John Smith",
	},
	{
		Name: "Gibraltar Chess Festival 2024", Location: "Gibraltar",
		StartDate: day("2024-01-23T15:00:00Z"), EndDate: day("2024-01-31T17:00:00Z"),
		Rounds: 10, TimeControl: "90+30", Arbiter: "IA Sarah Wilson",
	},
	{
		Name: "European Individual Championship 2024", Location: "Petrovac, Montenegro",
		StartDate: day("2024-03-18T15:00:00Z"), EndDate: day("2024-03-30T18:00:00Z"),
		Rounds: 11, TimeControl: "90+30", Arbiter: "IA Aleksandar Wohl",
	},
	{
		Name: "US Chess Championship 2024", Location: "Saint Louis, USA",
		StartDate: day("2024-10-09T19:00:00Z"), EndDate: day("2024-10-22T17:00:00Z"),
		Rounds: 11, TimeControl: "90+30", Arbiter: "IA Tony Rich",
	},
}
