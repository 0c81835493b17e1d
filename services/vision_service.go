package services

import (
	"context"
	"errors"
	"math"
	"os"
	"strings"

	"github.com/adilshaik/uga-nutrition-app/models"
	"github.com/adilshaik/uga-nutrition-app/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"github.com/google/uuid"
)

// MinDetectionConfidence suppresses weak detections before they reach
// the nutrition resolver.
const MinDetectionConfidence = 0.15

// Detection is one object instance the detector found in a plate
// photo. Transient; never persisted.
type Detection struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"` // 0..1
}

// NutritionEstimate is the portion-scaled nutrition for one detection.
type NutritionEstimate struct {
	Calories  float64          `json:"calories"`
	Protein   float64          `json:"protein"`
	Carbs     float64          `json:"carbs"`
	Fat       float64          `json:"fat"`
	Fiber     float64          `json:"fiber"`
	FoodGroup models.FoodGroup `json:"food_group"`
	Generic   bool             `json:"generic"` // true when the label wasn't in the table
}

// Candidate is a detection resolved into a prospective log entry,
// awaiting user confirmation. The resolver never writes to the log.
type Candidate struct {
	ID           string            `json:"id"`
	Label        string            `json:"label"`
	Confidence   float64           `json:"confidence"`
	PortionName  string            `json:"portion_name"`
	PortionLabel string            `json:"portion_label"`
	Estimate     NutritionEstimate `json:"estimate"`
}

type foodNutrition struct {
	Calories, Protein, Carbs, Fat, Fiber float64
	FoodGroup                            models.FoodGroup
}

// Per 1 cup serving (values from USDA). Groups use the same closed set
// as the classifier.
var foodNutritionTable = map[string]foodNutrition{
	"baked potato":     {161, 4.3, 36.6, 0.2, 3.8, models.GroupGrains},
	"black beans":      {227, 15.2, 40.8, 0.9, 15.0, models.GroupProtein},
	"broccoli":         {55, 3.7, 11.2, 0.6, 5.1, models.GroupVegetables},
	"cherry tomato":    {27, 1.3, 5.8, 0.3, 1.8, models.GroupVegetables},
	"chickpea":         {269, 14.5, 45.0, 4.2, 12.5, models.GroupProtein},
	"cucumber":         {16, 0.7, 3.1, 0.2, 0.5, models.GroupVegetables},
	"grapefruit":       {74, 1.5, 18.6, 0.2, 2.5, models.GroupFruits},
	"grapes":           {104, 1.1, 27.3, 0.2, 1.4, models.GroupFruits},
	"hash browns":      {326, 3.2, 35.1, 20.0, 3.2, models.GroupGrains},
	"lettuce":          {5, 0.5, 1.0, 0.1, 0.5, models.GroupVegetables},
	"mixed plate":      {250, 12.0, 30.0, 8.0, 4.0, models.GroupOther},
	"peach slices":     {60, 1.4, 14.7, 0.4, 2.3, models.GroupFruits},
	"pineapple chunks": {82, 0.9, 21.6, 0.2, 2.3, models.GroupFruits},
	"red bell peppers": {46, 1.5, 9.0, 0.5, 3.1, models.GroupVegetables},
	"sweet potato":     {180, 4.0, 41.4, 0.3, 6.6, models.GroupGrains},
}

// Fallback when a detector label isn't in the table. Detection labels
// are open vocabulary; the candidate still surfaces, clearly generic.
var genericNutrition = foodNutrition{50, 2, 10, 1, 2, models.GroupOther}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ResolveDetection looks up a detected label in the per-cup table and
// scales every numeric field by the portion multiplier. Calories round
// to whole numbers, the rest to one decimal; the food group passes
// through unscaled.
func ResolveDetection(label string, portionMultiplier float64) NutritionEstimate {
	base, ok := foodNutritionTable[strings.ToLower(strings.TrimSpace(label))]
	if !ok {
		base = genericNutrition
	}

	return NutritionEstimate{
		Calories:  math.Round(base.Calories * portionMultiplier),
		Protein:   round1(base.Protein * portionMultiplier),
		Carbs:     round1(base.Carbs * portionMultiplier),
		Fat:       round1(base.Fat * portionMultiplier),
		Fiber:     round1(base.Fiber * portionMultiplier),
		FoodGroup: base.FoodGroup,
		Generic:   !ok,
	}
}

// ResolveCandidates filters out low-confidence detections and resolves
// the rest at the given portion.
func ResolveCandidates(detections []Detection, portionName string) []Candidate {
	multiplier := utils.PortionMultiplier(portionName)

	out := make([]Candidate, 0, len(detections))
	for _, d := range detections {
		if d.Confidence < MinDetectionConfidence {
			continue
		}
		out = append(out, Candidate{
			ID:           uuid.NewString(),
			Label:        d.Label,
			Confidence:   math.Round(d.Confidence*100) / 100,
			PortionName:  portionName,
			PortionLabel: portionLabel(multiplier),
			Estimate:     ResolveDetection(d.Label, multiplier),
		})
	}
	return out
}

func portionLabel(multiplier float64) string {
	switch multiplier {
	case 0.5:
		return "0.5 cup"
	case 1.5:
		return "1.5 cups"
	case 2.0:
		return "2 cups"
	default:
		return "1 cup"
	}
}

type VisionService struct {
	client *rekognition.Client
}

func NewVisionService() (*VisionService, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &VisionService{client: rekognition.NewFromConfig(cfg)}, nil
}

// DetectFoods runs label detection over raw image bytes and returns
// food-ish detections, confidences normalized to 0..1.
func (v *VisionService) DetectFoods(imageData []byte) ([]Detection, error) {
	out, err := v.client.DetectLabels(context.TODO(), &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: imageData},
		MaxLabels:     aws.Int32(10),
		MinConfidence: aws.Float32(10),
	})
	if err != nil {
		return nil, err
	}

	var detections []Detection
	for _, l := range out.Labels {
		if l.Name == nil {
			continue
		}
		detections = append(detections, Detection{
			Label:      strings.ToLower(*l.Name),
			Confidence: float64(aws.ToFloat32(l.Confidence)) / 100,
		})
	}
	if len(detections) == 0 {
		return nil, errors.New("no foods detected in this image")
	}
	return detections, nil
}
