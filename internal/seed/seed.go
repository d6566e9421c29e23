// Package seed loads a representative sample inventory, covering every
// resource type and status, for demos and local development.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log"

	"resource-inventory-backend/internal/model"
	"resource-inventory-backend/internal/store"
)

func intPtr(n int) *int { return &n }

var sampleResources = []model.Resource{
	{
		Name:         "Computer Lab A",
		ResourceType: model.TypeRoom,
		Description:  "Main computer laboratory with 30 workstations, projector, and interactive whiteboard.",
		Capacity:     intPtr(30),
		Location:     "Building A, Floor 2, Room 201",
		Status:       model.StatusAvailable,
	},
	{
		Name:         "Conference Room B",
		ResourceType: model.TypeRoom,
		Description:  "Large conference room with video conferencing facilities and presentation screen.",
		Capacity:     intPtr(50),
		Location:     "Building A, Floor 1, Room 105",
		Status:       model.StatusAvailable,
	},
	{
		Name:         "Study Room 1",
		ResourceType: model.TypeRoom,
		Description:  "Small study room ideal for group discussions and collaborative work.",
		Capacity:     intPtr(8),
		Location:     "Library Building, Floor 2, Room 205",
		Status:       model.StatusBooked,
	},
	{
		Name:         "Main Lecture Hall",
		ResourceType: model.TypeHall,
		Description:  "Large lecture hall with tiered seating and professional audio-visual equipment.",
		Capacity:     intPtr(200),
		Location:     "Building B, Ground Floor",
		Status:       model.StatusAvailable,
	},
	{
		Name:         "Seminar Hall D",
		ResourceType: model.TypeHall,
		Description:  "Modern seminar hall with smart board and wireless presentation system.",
		Capacity:     intPtr(80),
		Location:     "Building C, Floor 1",
		Status:       model.StatusMaintenance,
	},
	{
		Name:         "Digital Projector Unit 1",
		ResourceType: model.TypeEquipment,
		Description:  "High-resolution 4K digital projector with HDMI, USB, and wireless connectivity.",
		Capacity:     intPtr(1),
		Location:     "AV Equipment Storage Room",
		Status:       model.StatusAvailable,
	},
	{
		Name:           "Robotic Arm Kit",
		ResourceType:   model.TypeEquipment,
		Description:    "6-axis industrial robotic arm for engineering demonstrations and research projects.",
		Capacity:       intPtr(1),
		Location:       "Engineering Lab, Building D, Room 301",
		Status:         model.StatusAvailable,
		Specifications: "6 axes, 5 kg payload, 0.02 mm repeatability",
	},
	{
		Name:             "3D Printer - Ultimaker S3",
		ResourceType:     model.TypeEquipment,
		Description:      "Professional 3D printer for rapid prototyping and educational demonstrations.",
		Capacity:         intPtr(1),
		Location:         "Maker Space, Building F, Room 105",
		Status:           model.StatusMaintenance,
		MaintenanceNotes: "Print head replacement scheduled.",
	},
	{
		Name:         "Chemistry Lab 1",
		ResourceType: model.TypeLab,
		Description:  "Fully equipped chemistry laboratory with fume hoods and chemical storage.",
		Capacity:     intPtr(25),
		Location:     "Science Building, Floor 3, Room 301",
		Status:       model.StatusAvailable,
	},
	{
		Name:         "Physics Lab 2",
		ResourceType: model.TypeLab,
		Description:  "Advanced physics laboratory with optical bench and measurement instruments.",
		Capacity:     intPtr(20),
		Location:     "Science Building, Floor 2, Room 205",
		Status:       model.StatusAvailable,
	},
}

// Run inserts the sample resources, skipping any whose name already
// exists, and returns the number actually inserted.
func Run(ctx context.Context, s store.Store) (int, error) {
	inserted := 0
	for _, sample := range sampleResources {
		resource := sample
		err := s.Create(ctx, &resource)
		if errors.Is(err, store.ErrConflict) {
			log.Printf("seed: %q already exists, skipping", resource.Name)
			continue
		}
		if err != nil {
			return inserted, fmt.Errorf("seed: failed to insert %q: %w", resource.Name, err)
		}
		inserted++
	}
	return inserted, nil
}
