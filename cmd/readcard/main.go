// Copyright 2026 The OpenRFID Authors.
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// readcard finds a PN532 on an I2C bus, waits for a MIFARE Classic card
// and dumps one block of it.
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/openrfid/pn532"
	"github.com/openrfid/pn532/detection"
	"github.com/openrfid/pn532/transport/i2c"
)

func main() {
	busFlag := flag.String("bus", "", "I2C bus (default: first bus with a PN532)")
	blockFlag := flag.Int("block", 4, "MIFARE Classic block to read")
	keyFlag := flag.String("key", "ffffffffffff", "authentication key A, 6 bytes hex")
	debugFlag := flag.Bool("debug", false, "log bus frames")
	flag.Parse()

	if *debugFlag {
		pn532.SetDebugLogging(true)
	}
	if *blockFlag < 0 || *blockFlag > 0xFF {
		log.Fatalf("block must be 0-255, got %d", *blockFlag)
	}
	key, err := hex.DecodeString(*keyFlag)
	if err != nil || len(key) != 6 {
		log.Fatalf("key must be 6 bytes of hex, got %q", *keyFlag)
	}

	bus := *busFlag
	if bus == "" {
		buses, err := detection.Detect()
		if err != nil {
			log.Fatalf("no PN532 found: %v", err)
		}
		bus = buses[0]
	}

	transport, err := i2c.New(bus)
	if err != nil {
		log.Fatalf("failed to open %s: %v", bus, err)
	}
	dev, err := pn532.New(transport)
	if err != nil {
		log.Fatalf("failed to create device: %v", err)
	}
	defer func() { _ = dev.Close() }()

	fw, err := dev.GetFirmwareVersion()
	if err != nil {
		log.Fatalf("failed to read firmware version: %v", err)
	}
	fmt.Printf("PN5%02X firmware %s on %s\n", fw.IC, fw, bus)

	if err := dev.SAMConfiguration(pn532.SAMModeNormal); err != nil {
		log.Fatalf("failed to configure SAM: %v", err)
	}

	fmt.Println("waiting for a card...")
	var target *pn532.TargetInfo
	for target == nil {
		target, err = dev.ListPassiveTarget()
		if err != nil {
			log.Fatalf("listing failed: %v", err)
		}
	}
	fmt.Printf("card %X (SAK %#02x)\n", target.UID, target.SelRes)

	if len(target.UID) != 4 {
		fmt.Println("not a MIFARE Classic card, skipping block read")
		return
	}

	block := byte(*blockFlag)
	err = dev.MIFAREClassicAuth(target.TargetNumber, pn532.MIFAREKeyA, block, key, target.UID)
	if err != nil {
		log.Fatalf("authentication failed: %v", err)
	}
	data, err := dev.MIFAREClassicRead(target.TargetNumber, block)
	if err != nil {
		log.Fatalf("read failed: %v", err)
	}
	fmt.Printf("block %d: % X\n", block, data)

	msg, err := pn532.DecodeNDEF(data)
	if err == nil {
		fmt.Printf("ndef: %s\n", msg)
	} else if !errors.Is(err, pn532.ErrNoNDEF) {
		fmt.Printf("ndef decode failed: %v\n", err)
	}
}
