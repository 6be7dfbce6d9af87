package reports

import (
	"encoding/json"

	"storepulse/model/model"

	quickchartgo "github.com/henomis/quickchart-go"
	"github.com/pkg/errors"
)

type chartConfig struct {
	Type string    `json:"type"`
	Data chartData `json:"data"`
}

type chartData struct {
	Labels   []interface{} `json:"labels"`
	DataSets []dataset     `json:"datasets"`
}

type dataset struct {
	Label       string        `json:"label"`
	Data        []interface{} `json:"data"`
	Fill        bool          `json:"fill"`
	LineTension float32       `json:"lineTension"`
}

func chartURLForConfig(config chartConfig) (string, error) {
	bytes, err := json.Marshal(config)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal chart config")
	}
	qc := quickchartgo.New()
	qc.Config = string(bytes)
	url, err := qc.GetUrl()
	if err != nil {
		return "", errors.Wrap(err, "failed to get chart url from quickchart")
	}
	return url, nil
}

// RepeatCurveChartURL renders the repeat purchase curve as a line chart URL.
func RepeatCurveChartURL(curve []model.RepeatCurvePoint) (string, error) {
	labels := make([]interface{}, 0, len(curve))
	data := make([]interface{}, 0, len(curve))
	for _, point := range curve {
		labels = append(labels, point.OrderNumber)
		data = append(data, point.Pct)
	}
	return chartURLForConfig(chartConfig{
		Type: "line",
		Data: chartData{
			Labels: labels,
			DataSets: []dataset{{
				Label:       "% of customers reaching order N",
				Data:        data,
				Fill:        false,
				LineTension: 0.1,
			}},
		},
	})
}

// CohortFirstMonthChartURL renders month-1 retention per cohort as a bar
// chart URL, a quick read on whether newer cohorts come back.
func CohortFirstMonthChartURL(retention model.CohortRetention) (string, error) {
	labels := make([]interface{}, 0, len(retention.Cohorts))
	data := make([]interface{}, 0, len(retention.Cohorts))
	for _, row := range retention.Cohorts {
		labels = append(labels, row.Cohort)
		if len(row.Retention) > 1 {
			data = append(data, row.Retention[1])
		} else {
			data = append(data, 0)
		}
	}
	return chartURLForConfig(chartConfig{
		Type: "bar",
		Data: chartData{
			Labels: labels,
			DataSets: []dataset{{
				Label: "Month 1 retention %",
				Data:  data,
			}},
		},
	})
}
