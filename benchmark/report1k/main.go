package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

var maxReporters int = 1000
var httpHostPort string = "127.0.0.1:1080"

// benchToken must be a token registered on the server, see HEAT_ADMIN_TOKEN
var benchToken string = os.Getenv("HEAT_BENCH_TOKEN")

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func main() {
	if benchToken == "" {
		log.Fatal("HEAT_BENCH_TOKEN not set, reports would all be rejected with 401")
	}

	reporterNames := make([]string, maxReporters)
	for i := 0; i < maxReporters; i++ {
		reporterNames[i] = uuid.NewString()
	}
	fmt.Printf("generated %v reporter names\n", maxReporters)

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := 0; i < maxReporters; i++ {
		i := i
		wg.Add(1)
		go func() {
			submitReport(reporterNames[i])
			fmt.Printf("\rsubmitted report %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rsubmitted %v reports: used time=%v seconds, throughput=%v action/second\n",
		maxReporters, usedTime.Seconds(), float64(maxReporters)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := 0; i < maxReporters; i++ {
		i := i
		wg.Add(1)
		go func() {
			doAction(reporterNames[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v reporters: used time=%v seconds, throughput=%v action/second\n",
		maxReporters, usedTime.Seconds(), float64(maxReporters*3)/usedTime.Seconds(),
	)
}

func flipCoin() bool {
	return rnd.Int31n(100000)%2 == 0
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func submitReport(name string) {
	tipo := "zona_fresca"
	if flipCoin() {
		tipo = "hidratacion"
	}

	// coordinates roughly inside the Cartagena urban area
	payload := map[string]any{
		"tipo":        tipo,
		"nombre":      "bench " + name,
		"descripcion": "generated load",
		"latitud":     rndFloat64(10.35, 10.47, 5),
		"longitud":    rndFloat64(-75.56, -75.45, 5),
	}

	jsonData, _ := json.Marshal(payload)
	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("http://%s/reportes", httpHostPort), bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+benchToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusTooManyRequests {
		fmt.Printf("\nunexpected status for report: %v\n", resp.StatusCode)
	}
}

func doAction(name string) {
	actions := []func(){
		genSubmitReportAction(name),
		genListAlertsAction(),
		genListReportsAction(),
	}
	actionNames := []string{
		"SubmitReport",
		"ListAlerts",
		"ListReports",
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for reporter %v", actionNames[index], name)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
}

func genSubmitReportAction(name string) func() {
	return func() {
		submitReport(name)
	}
}

func genListAlertsAction() func() {
	return func() {
		resp, err := http.Get(fmt.Sprintf("http://%s/alertas_calor", httpHostPort))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}

func genListReportsAction() func() {
	return func() {
		estado := ""
		if flipCoin() {
			estado = "?estado=pendiente"
		}
		resp, err := http.Get(fmt.Sprintf("http://%s/reportes%s", httpHostPort, estado))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}
