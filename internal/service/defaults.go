package service

import (
	"github.com/threadline/ratio-service/internal/domain/model"
	"github.com/threadline/ratio-service/internal/garment"
	"github.com/threadline/ratio-service/internal/sizescale"
)

// DefaultRatios returns the bundled fallback packing rules, served when the
// default scope has never been written to storage (or storage is down).
// Every rule with a real scale keeps its set pack equal to the sum of its
// size distribution.
func DefaultRatios() []model.GarmentRatio {
	pack := func(n int) *int { return &n }
	fixed := func(n int) *model.PackCount {
		c := model.Fixed(n)
		return &c
	}

	return []model.GarmentRatio{
		{
			Name:      garment.ShortSleeveShirt,
			SetPack:   pack(12),
			SizeScale: "S-XXL",
			Small:     fixed(3),
			Medium:    fixed(3),
			Large:     fixed(3),
			XL:        fixed(2),
			TwoXL:     fixed(1),
		},
		{
			Name:      garment.LongSleeveShirt,
			SetPack:   pack(12),
			SizeScale: "S-XXL",
			Small:     fixed(3),
			Medium:    fixed(3),
			Large:     fixed(3),
			XL:        fixed(2),
			TwoXL:     fixed(1),
		},
		{
			Name:      garment.Hoodie,
			SetPack:   pack(8),
			SizeScale: "S-XXL",
			Small:     fixed(2),
			Medium:    fixed(2),
			Large:     fixed(2),
			XL:        fixed(1),
			TwoXL:     fixed(1),
		},
		{
			Name:      garment.Crewneck,
			SetPack:   pack(8),
			SizeScale: "S-XXL",
			Small:     fixed(2),
			Medium:    fixed(2),
			Large:     fixed(2),
			XL:        fixed(1),
			TwoXL:     fixed(1),
		},
		{
			Name:      garment.Sweatpant,
			SetPack:   pack(6),
			SizeScale: "S-XL",
			Small:     fixed(2),
			Medium:    fixed(2),
			Large:     fixed(1),
			XL:        fixed(1),
		},
		{
			Name:      garment.Jogger,
			SetPack:   pack(6),
			SizeScale: "S-XL",
			Small:     fixed(2),
			Medium:    fixed(2),
			Large:     fixed(1),
			XL:        fixed(1),
		},
		{
			Name:      garment.Jacket,
			SetPack:   pack(6),
			SizeScale: "S-XL",
			Small:     fixed(2),
			Medium:    fixed(2),
			Large:     fixed(1),
			XL:        fixed(1),
		},
		{
			Name:      garment.Flannel,
			SetPack:   pack(6),
			SizeScale: "S-XL",
			Small:     fixed(2),
			Medium:    fixed(2),
			Large:     fixed(1),
			XL:        fixed(1),
		},
		{
			Name:      garment.Short,
			SetPack:   pack(6),
			SizeScale: "S-XL",
			Small:     fixed(2),
			Medium:    fixed(2),
			Large:     fixed(1),
			XL:        fixed(1),
		},
		{
			Name:      garment.Sock,
			SetPack:   pack(12),
			SizeScale: sizescale.SockToken,
			Sizes: &model.PairedSizes{
				SM:  fixed(6),
				LXL: fixed(6),
			},
		},
		{
			Name:         garment.InfantTee,
			SetPack:      pack(6),
			SizeScale:    sizescale.InfantToken,
			SixMonths:    fixed(3),
			TwelveMonths: fixed(3),
		},
		{
			Name:      garment.Sticker,
			SetPack:   pack(25),
			SizeScale: sizescale.NotApplicable,
		},
		{
			Name:      garment.Plush,
			SetPack:   pack(6),
			SizeScale: sizescale.NotApplicable,
		},
		{
			Name:      garment.Bottle,
			SetPack:   pack(12),
			SizeScale: sizescale.NotApplicable,
		},
		{
			Name:      garment.DisplayRack,
			SetPack:   pack(1),
			SizeScale: sizescale.NotApplicable,
		},
	}
}
