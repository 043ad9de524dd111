// Package model defines the core domain entities for the planning service.
package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Material is a raw stock type. Its width and length act as the generic roll
// when a plan has no specific roll selected.
//
// @Description Material stock type with default roll geometry
type Material struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Domain int                `bson:"domain" json:"domain"`
	Name   string             `bson:"name" json:"name" example:"PE 80 galga"`
	// Width is the default roll width in millimetres
	Width float64 `bson:"width" json:"width" example:"1000"`
	// Length is the default roll length in metres
	Length float64 `bson:"length" json:"length" example:"2000"`
}

// Product is an orderable item cut or blown from a material.
//
// @Description Product geometry and default material
type Product struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Domain int                `bson:"domain" json:"domain"`
	Code   string             `bson:"code,omitempty" json:"code,omitempty" example:"B-500"`
	Name   string             `bson:"name" json:"name" example:"Bolsa 500x300"`
	// Width is the product width in millimetres, measured across the roll
	Width float64 `bson:"width" json:"width" example:"500"`
	// Length is the product length in millimetres, measured along the roll
	Length float64 `bson:"length" json:"length" example:"300"`
	// Material is the default material, used when a plan does not pick one
	Material *Material `bson:"material,omitempty" json:"material,omitempty"`
}

// Roll is a specific batch of material with its own geometry.
//
// @Description Roll batch overriding the material geometry
type Roll struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Domain     int                `bson:"domain" json:"domain"`
	Name       string             `bson:"name" json:"name" example:"R-2024-117"`
	Width      float64            `bson:"width" json:"width" example:"1000"`
	Length     float64            `bson:"length" json:"length" example:"1800"`
	MaterialID primitive.ObjectID `bson:"material_id" json:"material_id"`
}

// Machine is a production machine. BlowsPerMinute is its nominal cycle rate.
//
// @Description Production machine and its nominal rate
type Machine struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Domain         int                `bson:"domain" json:"domain"`
	Name           string             `bson:"name" json:"name" example:"Sopladora 3"`
	BlowsPerMinute float64            `bson:"blows_minute" json:"blows_minute" example:"80"`
}

// Client is the customer a plan line is produced for.
type Client struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Domain int                `bson:"domain" json:"domain"`
	Name   string             `bson:"name" json:"name" example:"Frutas Levante"`
}
