// Command livefilter applies a rank statistic to a webcam feed and shows the
// result next to the raw frame.
package main

import (
	"flag"
	"fmt"
	"time"

	"gocv.io/x/gocv"

	"github.com/nvr-ai/go-rank/grid"
	"github.com/nvr-ai/go-rank/images"
	"github.com/nvr-ai/go-rank/rank"
)

func main() {
	var (
		deviceID int
		statName string
		radius   int
	)
	flag.IntVar(&deviceID, "device", 0, "Video capture device ID")
	flag.StringVar(&statName, "statistic", "median", "Rank statistic to apply")
	flag.IntVar(&radius, "radius", 2, "Disk footprint radius")
	flag.Parse()

	stat, err := rank.ParseStatistic(statName)
	if err != nil {
		fmt.Println(err)
		return
	}
	fp := grid.Disk(radius)

	webcam, err := gocv.OpenVideoCapture(deviceID)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer webcam.Close()

	window := gocv.NewWindow(fmt.Sprintf("livefilter: %s r=%d", stat, radius))
	defer window.Close()

	frame := gocv.NewMat()
	defer frame.Close()
	gray := gocv.NewMat()
	defer gray.Close()

	fmt.Printf("start reading camera device: %v\n", deviceID)
	lastTime := time.Now()
	frameCount := 0
	for {
		if ok := webcam.Read(&frame); !ok {
			fmt.Printf("cannot read device %v\n", deviceID)
			return
		}
		if frame.Empty() {
			continue
		}

		gocv.CvtColor(frame, &gray, gocv.ColorBGRToGray)
		img, err := images.FromMat(gray)
		if err != nil {
			fmt.Println(err)
			return
		}

		out, err := rank.Apply(img, fp, stat, nil)
		if err != nil {
			fmt.Println(err)
			return
		}

		filtered, err := images.ToMat(out)
		if err != nil {
			fmt.Println(err)
			return
		}
		window.IMShow(filtered)
		filtered.Close()

		frameCount++
		if elapsed := time.Since(lastTime); elapsed >= time.Second {
			fmt.Printf("fps: %.1f\n", float64(frameCount)/elapsed.Seconds())
			frameCount = 0
			lastTime = time.Now()
		}

		if window.WaitKey(1) == 27 { // esc
			return
		}
	}
}
