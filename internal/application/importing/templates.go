package importing

import (
	"github.com/prodsheet/backend/internal/domain/shared"
	xlsximport "github.com/prodsheet/backend/internal/infrastructure/import"
)

// templateSpec describes the sample workbook for one import target
type templateSpec struct {
	filename string
	sheet    string
	headers  []string
	example  []string
}

var templateSpecs = map[string]templateSpec{
	TargetProducts: {
		filename: "products_template.xlsx",
		sheet:    "Products",
		headers:  []string{"Item Code", "Description", "Category", "H (cm)", "D (cm)", "W (cm)", "CBM", "Image URL"},
		example:  []string{"CH-1001", "Oak dining chair", "chair", "95", "55", "48", "0.2508", ""},
	},
	TargetLeather: {
		filename: "leather_template.xlsx",
		sheet:    "Leather",
		headers:  []string{"Code", "Name", "Description", "Color", "Image URL"},
		example:  []string{"LTH-01", "Tan Aniline", "Full grain aniline leather", "#b5793c", ""},
	},
	TargetFinish: {
		filename: "finish_template.xlsx",
		sheet:    "Finish",
		headers:  []string{"Code", "Name", "Description", "Color", "Image URL"},
		example:  []string{"FN-01", "Walnut Matte", "Matte walnut stain", "#5b3a29", ""},
	},
	TargetFactories: {
		filename: "factories_template.xlsx",
		sheet:    "Factories",
		headers:  []string{"Code", "Name"},
		example:  []string{"SAE", "Shekhawati Art Exports"},
	},
}

// Template builds the downloadable sample workbook for a target
func (s *ImportService) Template(target string) (string, []byte, error) {
	spec, ok := templateSpecs[target]
	if !ok {
		return "", nil, shared.NewDomainError("INVALID_TARGET", "Unknown import target")
	}
	data, err := xlsximport.WriteTemplate(spec.sheet, spec.headers, spec.example)
	if err != nil {
		return "", nil, err
	}
	return spec.filename, data, nil
}
