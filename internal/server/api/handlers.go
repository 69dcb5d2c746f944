package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"krakenmon/pkg/hwmon"
)

type sensorResponse struct {
	Kind  string `json:"kind"`
	Index int    `json:"index"`
	Label string `json:"label"`
	Value int64  `json:"value"`
	Unit  string `json:"unit"`
}

type deviceResponse struct {
	Name     string `json:"name"`
	Channels int    `json:"channels"`
}

func (s *Server) getDevice(c *fiber.Ctx) error {
	return c.JSON(deviceResponse{
		Name:     s.chip.Name(),
		Channels: len(s.chip.Channels()),
	})
}

func (s *Server) getSensors(c *fiber.Ctx) error {
	readings, err := hwmon.ReadAll(s.chip)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	out := make([]sensorResponse, 0, len(readings))
	for _, r := range readings {
		out = append(out, sensorResponse{
			Kind:  r.Kind.String(),
			Index: r.Index,
			Label: r.Label,
			Value: r.Value,
			Unit:  r.Kind.Unit(),
		})
	}
	return c.JSON(out)
}

func (s *Server) getSensor(c *fiber.Ctx) error {
	kind, err := hwmon.ParseKind(c.Params("kind"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "index must be an integer"})
	}

	value, err := s.chip.Read(kind, index)
	if err != nil {
		if errors.Is(err, hwmon.ErrUnsupportedChannel) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	label, err := s.chip.Label(kind, index)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(sensorResponse{
		Kind:  kind.String(),
		Index: index,
		Label: label,
		Value: value,
		Unit:  kind.Unit(),
	})
}
