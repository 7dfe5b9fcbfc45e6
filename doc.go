/*
Package fleetintake runs a conversational interview that collects a structured
description of a company's truck fleet.

The interview asks for the contact's name and company, whether the company owns
trucks, how many, and which brands. For every brand it asks how many trucks
there are and whether they share one model, and for every model its engine
size, axle count, weight, maximum load and number of trucks. Free-text answers
are normalized, brands are recognized with a fuzzy matcher, and every answer
is checked against the totals given earlier so the finished record is always
consistent.

# Usage

Create an Engine from a brand vocabulary, then run an interview over any
ports.Conversation:

	engine, err := fleetintake.New(ctx, file.NewBrandList("brands.txt"),
		fleetintake.WithStore(file.New("data.jsonl")),
	)
	if err != nil {
		log.Fatal(err)
	}

	conv := runner.NewTextConversation(os.Stdin, os.Stdout)
	record, err := engine.Interview(ctx, conv, nil)

While brands are being described, the user may answer "start over" to describe
all brands again, or "correct <brand>" to redo a single brand.

# Persistence

Each completed interview is appended as one JSON line:

	{"name":"Ann","company":"Acme","total_trucks":2,"trucks":[{"brand":"Volvo","model":"FH16",
	 "engine_size":13,"axle_number":3,"weight":20,"max_load":25,"n_trucks":2}]}

Records go to a JSONL file (pkg/adapters/file), a Redis list
(pkg/adapters/redis) or memory (pkg/adapters/memory).

# Command line

The fleetintake command wraps the Engine with configuration, transcripts and
an optional Prometheus endpoint:

	fleetintake run --brands brands.txt --data data.jsonl
	fleetintake brands --match "two volvos and a scania"
	fleetintake graph > interview.mmd
*/
package fleetintake
