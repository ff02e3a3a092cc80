package catalog

import (
	"fmt"
	"sort"
	"strings"

	"labline/models"
)

// Catalog is the immutable table of offered diagnostic services, keyed by the
// menu number users reply with.
type Catalog struct {
	services map[int]models.Service
}

// Default returns the catalog of pathological services offered by the lab.
func Default() *Catalog {
	entries := []models.Service{
		{
			Code:     1,
			Name:     "Hematology",
			MediaRef: "1.png",
			Description: "*Hematology*\n- Complete Blood Count (CBC)\n- Hemoglobin (Hb) Test\n- Platelet Count\n" +
				"- ESR (Erythrocyte Sedimentation Rate)\n- Blood Grouping & Rh Factor\n- Prothrombin Time (PT)/INR",
		},
		{
			Code:     2,
			Name:     "Biochemistry",
			MediaRef: "2.png",
			Description: "*Biochemistry*\n- Blood Glucose (Fasting, Postprandial, Random)\n- Lipid Profile (Total Cholesterol, HDL, LDL, Triglycerides)\n" +
				"- Liver Function Test (LFT)\n- Kidney Function Test (KFT)\n- Serum Calcium & Phosphorus\n" +
				"- HbA1c (Glycated Hemoglobin)\n- Iron Studies (Serum Iron, Ferritin, TIBC)",
		},
		{
			Code:     3,
			Name:     "Serology & Immunology",
			MediaRef: "3.png",
			Description: "*Serology & Immunology*\n- Widal Test (Typhoid)\n- Dengue NS1 Antigen, IgG/IgM Antibodies\n- Malaria Antigen Test\n" +
				"- HIV I & II Test\n- HBsAg (Hepatitis B)\n- HCV Test (Hepatitis C)\n- CRP (C-Reactive Protein)\n" +
				"- Rheumatoid Factor (RA)\n- Anti-Nuclear Antibody (ANA)",
		},
		{
			Code:     4,
			Name:     "Microbiology",
			MediaRef: "4.png",
			Description: "*Microbiology*\n- Routine Stool Examination\n- Urine Routine & Microscopy\n" +
				"- Blood, Urine, and Sputum Culture/Sensitivity\n- TB-PCR (for Tuberculosis)\n- H. Pylori Antigen Test",
		},
		{
			Code:     5,
			Name:     "Endocrinology & Hormones",
			MediaRef: "5.png",
			Description: "*Endocrinology & Hormones*\n- Thyroid Profile (T3, T4, TSH)\n- Vitamin D & Vitamin B12\n" +
				"- Insulin Levels\n- FSH, LH, Prolactin, Estradiol\n- Testosterone",
		},
		{
			Code:     6,
			Name:     "Infectious Diseases",
			MediaRef: "6.png",
			Description: "*Infectious Diseases*\n- Covid-19 RTPCR/Antigen Test\n" +
				"- TORCH Panel (Toxoplasmosis, Rubella, Cytomegalovirus, Herpes)\n- VDRL (Syphilis)",
		},
		{
			Code:     7,
			Name:     "Molecular Diagnostics & Specialized Tests",
			MediaRef: "7.png",
			Description: "*Molecular Diagnostics & Specialized Tests*\n- PCR for Viral Load (HIV, HBV, HCV)\n" +
				"- DNA Tests (Paternity or Forensic Testing)\n- Genetic Screening",
		},
	}

	services := make(map[int]models.Service, len(entries))
	for _, svc := range entries {
		services[svc.Code] = svc
	}
	return &Catalog{services: services}
}

// Get returns the service for a menu code.
func (c *Catalog) Get(code int) (models.Service, bool) {
	svc, ok := c.services[code]
	return svc, ok
}

// List returns all services in menu order.
func (c *Catalog) List() []models.Service {
	out := make([]models.Service, 0, len(c.services))
	for _, svc := range c.services {
		out = append(out, svc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Size returns the number of catalog entries.
func (c *Catalog) Size() int {
	return len(c.services)
}

// Menu renders the numbered service menu sent to users.
func (c *Catalog) Menu() string {
	var b strings.Builder
	b.WriteString("*Pathological Services*")
	for _, svc := range c.List() {
		b.WriteString(fmt.Sprintf("\n%d) %s", svc.Code, svc.Name))
	}
	return b.String()
}
