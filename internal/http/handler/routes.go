package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"pokedex/internal/service"
)

// IndexHTML is the fixed body served at /.
const IndexHTML = "<h1>Hi I am the first page</h1>"

// Template names understood by the view engine.
const (
	helloView   = "hello"
	pokemonView = "index"
)

// Route is one entry of the route table.
type Route struct {
	Method  string
	Path    string
	Handler fiber.Handler
}

// Routes returns the application's route table.
func Routes(pokemonSvc service.PokemonService) []Route {
	return []Route{
		{Method: fiber.MethodGet, Path: "/", Handler: Index()},
		{Method: fiber.MethodGet, Path: "/hi/:name", Handler: Greeting()},
		{Method: fiber.MethodGet, Path: "/pokemon", Handler: ListPokemon(pokemonSvc)},
		{Method: fiber.MethodGet, Path: "/healthz", Handler: LivenessProbe()},
	}
}

// RegisterRoutes attaches the route table to the provided Fiber app.
func RegisterRoutes(app *fiber.App, pokemonSvc service.PokemonService) {
	for _, r := range Routes(pokemonSvc) {
		app.Add(r.Method, r.Path, r.Handler)
	}
}

// Index serves the fixed landing fragment.
func Index() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Type("html").SendString(IndexHTML)
	}
}

// Greeting renders the hello page for the :name path segment.
// Escaping is left to html/template.
func Greeting() fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("name")
		if name == "" {
			return fiber.ErrNotFound
		}

		trace.SpanFromContext(c.UserContext()).SetAttributes(attribute.String("pokedex.name", name))

		if err := c.Render(helloView, fiber.Map{"Name": name}); err != nil {
			return fmt.Errorf("render %s: %w", helloView, err)
		}
		return nil
	}
}

// ListPokemon renders the roster with its length.
func ListPokemon(pokemonSvc service.PokemonService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := pokemonSvc.List(c.UserContext())
		if err != nil {
			return err
		}

		trace.SpanFromContext(c.UserContext()).SetAttributes(attribute.Int("pokedex.count", res.Total))

		if err := c.Render(pokemonView, fiber.Map{
			"Len":      res.Total,
			"Pokemons": res.Items,
		}); err != nil {
			return fmt.Errorf("render %s: %w", pokemonView, err)
		}
		return nil
	}
}

// LivenessProbe answers 200 while the process is serving.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
