package edesto

// Board describes a supported microcontroller board.
// Boards are registered once at package init and never mutated.
type Board struct {
	// Slug is the unique short identifier (e.g. "esp32", "arduino-uno")
	Slug string
	// Name is the human-readable board name
	Name string
	// FQBN is the fully qualified board name used by arduino-cli ("vendor:arch:board")
	FQBN string
	// Core is the arduino-cli core (board support package) identifier
	Core string
	// CoreURL is the board manager index URL for installing the core
	// (empty for cores bundled with arduino-cli)
	CoreURL string
	// BaudRate is the default serial speed for the board
	BaudRate int
	// Capabilities are the feature tags the board supports (wifi, ble, ...)
	Capabilities []string
	// Pins maps logical pin names to GPIO numbers
	Pins map[string]int
	// Pitfalls are board-specific warnings for the instructions document
	Pitfalls []string
	// PinNotes are board-specific pin annotations for the instructions document
	PinNotes []string
	// Includes maps capability tags to the #include line needed to use them
	Includes map[string]string
}

// boards holds all registered boards in registration order.
// boardsBySlug and boardsByFQBN index the same entries.
var (
	boards       []*Board
	boardsBySlug = make(map[string]*Board)
	boardsByFQBN = make(map[string]*Board)
)

// register adds a board to the registry. Called only from init.
func register(b Board) {
	p := &b
	boards = append(boards, p)
	boardsBySlug[b.Slug] = p
	boardsByFQBN[b.FQBN] = p
}

// GetBoard returns the board registered under slug.
// Returns a BoardNotFoundError if the slug is not registered.
func GetBoard(slug string) (*Board, error) {
	b, ok := boardsBySlug[slug]
	if !ok {
		return nil, &BoardNotFoundError{Slug: slug}
	}
	return b, nil
}

// ListBoards returns all registered boards in registration order.
// The returned slice is a fresh copy; the registry itself never changes.
func ListBoards() []Board {
	out := make([]Board, 0, len(boards))
	for _, b := range boards {
		out = append(out, *b)
	}
	return out
}

// GetBoardByFQBN returns the board whose FQBN exactly matches fqbn.
// The second return value is false when no board matches. Detection uses
// this in a best-effort context, so an absent board is not an error.
func GetBoardByFQBN(fqbn string) (*Board, bool) {
	b, ok := boardsByFQBN[fqbn]
	return b, ok
}

// Board data below mirrors the capabilities, pins, pitfalls and pin notes
// gathered from vendor datasheets and Arduino core documentation.

func init() {
	register(Board{
		Slug:         "esp32",
		Name:         "ESP32",
		FQBN:         "esp32:esp32:esp32",
		Core:         "esp32:esp32",
		CoreURL:      "https://raw.githubusercontent.com/espressif/arduino-esp32/gh-pages/package_esp32_index.json",
		BaudRate:     115200,
		Capabilities: []string{"wifi", "bluetooth", "ble", "http_server", "ota", "spiffs", "preferences"},
		Pins: map[string]int{
			"onboard_led": 2,
			"boot_button": 0,
			"i2c_sda":     21,
			"i2c_scl":     22,
			"spi_mosi":    23,
			"spi_miso":    19,
			"spi_sck":     18,
			"spi_ss":      5,
			"dac1":        25,
			"dac2":        26,
		},
		PinNotes: []string{
			"GPIO 0: Boot button — do not use for general I/O",
			"GPIO 2: Onboard LED",
			"GPIO 34-39: Input only (no pull-up/pull-down)",
			"ADC1: GPIO 32-39 (12-bit, works alongside WiFi)",
			"ADC2: GPIO 0,2,4,12-15,25-27 (does NOT work when WiFi is active)",
			"DAC: GPIO 25 (DAC1), GPIO 26 (DAC2)",
			"I2C default: SDA=21, SCL=22",
			"SPI default: MOSI=23, MISO=19, SCK=18, SS=5",
		},
		Pitfalls: []string{
			"ADC2 pins do not work when WiFi is active. Use ADC1 pins (32-39) if you need analog reads with WiFi.",
			"WiFi and Bluetooth at full power simultaneously will cause instability. Use one at a time or reduce power.",
			"If upload fails with 'connection timeout', hold the BOOT button while uploading.",
			"The ESP32 prints boot messages (rst:, boot:) on serial. Ignore these in your validation.",
			"delay() blocks the entire core. Use millis() for non-blocking timing.",
			"Stack size is 8KB per task by default. Use xTaskCreate() with a larger stack for complex tasks.",
			"OTA requires enough free flash for two firmware images. Use a partition scheme that supports this.",
			"String concatenation in loops causes heap fragmentation. Use char[] buffers for repeated operations.",
		},
		Includes: map[string]string{
			"wifi":        "#include <WiFi.h>",
			"bluetooth":   "#include <BluetoothSerial.h>",
			"http_server": "#include <WebServer.h>",
			"ota":         "#include <ArduinoOTA.h>",
			"preferences": "#include <Preferences.h>",
			"spiffs":      "#include <SPIFFS.h>",
		},
	})

	register(Board{
		Slug:         "esp32s3",
		Name:         "ESP32-S3",
		FQBN:         "esp32:esp32:esp32s3",
		Core:         "esp32:esp32",
		CoreURL:      "https://raw.githubusercontent.com/espressif/arduino-esp32/gh-pages/package_esp32_index.json",
		BaudRate:     115200,
		Capabilities: []string{"wifi", "ble", "http_server", "ota", "spiffs", "preferences", "usb_native"},
		Pins: map[string]int{
			"onboard_led": 48,
			"i2c_sda":     8,
			"i2c_scl":     9,
			"spi_mosi":    11,
			"spi_miso":    13,
			"spi_sck":     12,
			"spi_ss":      10,
		},
		PinNotes: []string{
			"GPIO 48: RGB LED (WS2812-style, not a simple HIGH/LOW LED)",
			"GPIO 19/20: USB D-/D+ — do not use for general I/O",
			"GPIO 0: Boot button — do not use for general I/O",
			"ADC1: GPIO 1-10 (works alongside WiFi)",
			"ADC2: GPIO 11-20 (does NOT work when WiFi is active)",
			"I2C default: SDA=8, SCL=9",
			"SPI default: MOSI=11, MISO=13, SCK=12, SS=10",
		},
		Pitfalls: []string{
			"ADC2 pins do not work when WiFi is active. Use ADC1 pins (1-10) if you need analog reads with WiFi.",
			"GPIO 19/20 are USB pins. Do not use them for general I/O.",
			"RGB LED on GPIO 48 requires NeoPixel-style protocol, not simple digitalWrite.",
			"If upload fails, hold BOOT and press RST, then release BOOT after upload starts.",
			"delay() blocks the entire core. Use millis() for non-blocking timing.",
			"String concatenation in loops causes heap fragmentation. Use char[] buffers for repeated operations.",
		},
		Includes: map[string]string{
			"wifi":        "#include <WiFi.h>",
			"http_server": "#include <WebServer.h>",
			"ota":         "#include <ArduinoOTA.h>",
			"preferences": "#include <Preferences.h>",
			"spiffs":      "#include <SPIFFS.h>",
		},
	})

	register(Board{
		Slug:         "esp32c3",
		Name:         "ESP32-C3",
		FQBN:         "esp32:esp32:esp32c3",
		Core:         "esp32:esp32",
		CoreURL:      "https://raw.githubusercontent.com/espressif/arduino-esp32/gh-pages/package_esp32_index.json",
		BaudRate:     115200,
		Capabilities: []string{"wifi", "ble", "http_server", "ota", "spiffs", "preferences"},
		Pins: map[string]int{
			"onboard_led": 8,
			"i2c_sda":     8,
			"i2c_scl":     9,
			"spi_mosi":    6,
			"spi_miso":    5,
			"spi_sck":     4,
			"spi_ss":      7,
		},
		PinNotes: []string{
			"GPIO 8: Onboard LED",
			"GPIO 9: Boot button — do not use for general I/O",
			"Only 22 GPIO pins available",
			"ADC1: GPIO 0-4 (no ADC2 on this chip)",
			"RISC-V single core architecture",
		},
		Pitfalls: []string{
			"Single-core RISC-V — no dual-core parallelism available.",
			"Only 22 GPIO pins. Plan pin usage carefully.",
			"GPIO 8 is shared between onboard LED and I2C SDA. Use a different SDA pin if LED is needed.",
			"GPIO 9 is the BOOT button. Do not use for general I/O.",
			"delay() blocks the entire core. Use millis() for non-blocking timing.",
			"No Bluetooth Classic — only BLE is supported.",
		},
		Includes: map[string]string{
			"wifi":        "#include <WiFi.h>",
			"http_server": "#include <WebServer.h>",
			"ota":         "#include <ArduinoOTA.h>",
			"preferences": "#include <Preferences.h>",
			"spiffs":      "#include <SPIFFS.h>",
		},
	})

	register(Board{
		Slug:         "esp32c6",
		Name:         "ESP32-C6",
		FQBN:         "esp32:esp32:esp32c6",
		Core:         "esp32:esp32",
		CoreURL:      "https://raw.githubusercontent.com/espressif/arduino-esp32/gh-pages/package_esp32_index.json",
		BaudRate:     115200,
		Capabilities: []string{"wifi", "wifi6", "ble", "zigbee", "thread", "http_server", "ota", "spiffs", "preferences"},
		Pins: map[string]int{
			"onboard_led": 8,
			"i2c_sda":     6,
			"i2c_scl":     7,
			"spi_mosi":    19,
			"spi_miso":    20,
			"spi_sck":     21,
			"spi_ss":      18,
		},
		PinNotes: []string{
			"GPIO 8: Onboard LED",
			"GPIO 9: Boot button — do not use for general I/O",
			"30 GPIO pins available",
			"ADC1: GPIO 0-6",
			"RISC-V architecture",
			"IEEE 802.15.4 radio for Zigbee/Thread",
		},
		Pitfalls: []string{
			"Single high-performance RISC-V core — no dual-core parallelism.",
			"WiFi 6 support requires ESP-IDF v5.1+ (check your Arduino core version).",
			"Zigbee and Thread share the 802.15.4 radio — cannot use both simultaneously.",
			"GPIO 9 is the BOOT button. Do not use for general I/O.",
			"delay() blocks the entire core. Use millis() for non-blocking timing.",
			"No Bluetooth Classic — only BLE is supported.",
			"Newer chip — verify your Arduino ESP32 core version supports it.",
		},
		Includes: map[string]string{
			"wifi":        "#include <WiFi.h>",
			"http_server": "#include <WebServer.h>",
			"ota":         "#include <ArduinoOTA.h>",
			"preferences": "#include <Preferences.h>",
			"spiffs":      "#include <SPIFFS.h>",
		},
	})

	register(Board{
		Slug:         "esp8266",
		Name:         "ESP8266",
		FQBN:         "esp8266:esp8266:nodemcuv2",
		Core:         "esp8266:esp8266",
		CoreURL:      "https://arduino.esp8266.com/stable/package_esp8266com_index.json",
		BaudRate:     115200,
		Capabilities: []string{"wifi", "http_server", "ota", "spiffs"},
		Pins: map[string]int{
			"onboard_led": 2,
			"i2c_sda":     4,
			"i2c_scl":     5,
			"spi_mosi":    13,
			"spi_miso":    12,
			"spi_sck":     14,
			"spi_ss":      15,
		},
		PinNotes: []string{
			"GPIO 2: Onboard LED (active LOW — LOW turns it ON)",
			"GPIO 0: Flash/boot mode — do not use for general I/O",
			"GPIO 16: Deep sleep wake — connect to RST for deep sleep wake-up",
			"1 ADC pin (A0), 10-bit resolution, 0-1V range",
			"I2C default: SDA=4 (D2), SCL=5 (D1)",
			"NodeMCU D-labels differ from GPIO numbers (D1=GPIO5, D2=GPIO4, etc.)",
		},
		Pitfalls: []string{
			"Only 80KB RAM — avoid large buffers and dynamic memory allocation.",
			"Single core — delay() blocks WiFi stack. Use yield() or millis()-based timing.",
			"GPIO 6-11 are connected to flash. Do not use them.",
			"Onboard LED is active LOW — digitalWrite(2, LOW) turns it ON.",
			"ADC range is 0-1V (not 3.3V). Use a voltage divider for higher voltages.",
			"Watchdog timer will reset the chip if loop() takes too long. Use yield() in long operations.",
			"2.4GHz WiFi only — no 5GHz support.",
		},
		Includes: map[string]string{
			"wifi":        "#include <ESP8266WiFi.h>",
			"http_server": "#include <ESP8266WebServer.h>",
			"ota":         "#include <ArduinoOTA.h>",
			"spiffs":      "#include <FS.h>",
		},
	})

	register(Board{
		Slug:         "arduino-uno",
		Name:         "Arduino Uno",
		FQBN:         "arduino:avr:uno",
		Core:         "arduino:avr",
		BaudRate:     9600,
		Capabilities: []string{"digital_io", "analog_input", "pwm", "i2c", "spi", "uart"},
		Pins: map[string]int{
			"onboard_led": 13,
			"i2c_sda":     18,
			"i2c_scl":     19,
			"spi_mosi":    11,
			"spi_miso":    12,
			"spi_sck":     13,
			"spi_ss":      10,
		},
		PinNotes: []string{
			"GPIO 13: Onboard LED (shared with SPI SCK)",
			"A0-A5: 10-bit analog input",
			"PWM: pins 3, 5, 6, 9, 10, 11",
			"I2C: SDA=A4, SCL=A5",
			"Pin 13 flickers during SPI communication",
			"Pins 0/1: Serial TX/RX (shared with USB)",
		},
		Pitfalls: []string{
			"Only 2KB SRAM and 32KB flash. Avoid String objects and large arrays.",
			"No floating-point hardware — float operations are slow and use flash.",
			"Pin 13 is shared with SPI SCK. LED flickers during SPI communication.",
			"Pins 0/1 are shared with USB serial. Do not use for I/O during serial communication.",
			"analogWrite() is PWM, not true analog output. No DAC available.",
			"External interrupts only on pins 2 and 3.",
			"delay() blocks the entire MCU. Use millis() for non-blocking timing.",
			"No WiFi or Bluetooth. Use external modules (ESP-01, HC-05) if needed.",
		},
	})

	register(Board{
		Slug:         "arduino-nano",
		Name:         "Arduino Nano",
		FQBN:         "arduino:avr:nano",
		Core:         "arduino:avr",
		BaudRate:     9600,
		Capabilities: []string{"digital_io", "analog_input", "pwm", "i2c", "spi", "uart"},
		Pins: map[string]int{
			"onboard_led": 13,
			"i2c_sda":     18,
			"i2c_scl":     19,
			"spi_mosi":    11,
			"spi_miso":    12,
			"spi_sck":     13,
			"spi_ss":      10,
		},
		PinNotes: []string{
			"GPIO 13: Onboard LED",
			"A0-A7: analog input (A6/A7 are analog input only, no digital)",
			"PWM: pins 3, 5, 6, 9, 10, 11",
			"I2C: SDA=A4, SCL=A5",
			"Pins 0/1: Serial TX/RX (shared with USB)",
		},
		Pitfalls: []string{
			"Only 2KB SRAM and 32KB flash. Avoid String objects and large arrays.",
			"A6/A7 are analog input only — cannot be used as digital I/O.",
			"Clone Nanos often need old bootloader: use --fqbn arduino:avr:nano:cpu=atmega328old.",
			"No floating-point hardware — float operations are slow and use flash.",
			"Pins 0/1 are shared with USB serial. Do not use for I/O during serial communication.",
			"External interrupts only on pins 2 and 3.",
			"delay() blocks the entire MCU. Use millis() for non-blocking timing.",
			"No WiFi or Bluetooth. Use external modules if needed.",
		},
	})

	register(Board{
		Slug:         "arduino-mega",
		Name:         "Arduino Mega 2560",
		FQBN:         "arduino:avr:mega",
		Core:         "arduino:avr",
		BaudRate:     9600,
		Capabilities: []string{"digital_io", "analog_input", "pwm", "i2c", "spi", "uart", "multi_serial"},
		Pins: map[string]int{
			"onboard_led": 13,
			"i2c_sda":     20,
			"i2c_scl":     21,
			"spi_mosi":    51,
			"spi_miso":    50,
			"spi_sck":     52,
			"spi_ss":      53,
		},
		PinNotes: []string{
			"GPIO 13: Onboard LED",
			"A0-A15: 16 analog input channels, 10-bit",
			"PWM: pins 2-13, 44-46",
			"I2C: SDA=20, SCL=21",
			"SPI: MOSI=51, MISO=50, SCK=52, SS=53",
			"4 serial ports: Serial (0/1), Serial1 (18/19), Serial2 (16/17), Serial3 (14/15)",
			"External interrupts: pins 2, 3, 18, 19, 20, 21",
		},
		Pitfalls: []string{
			"8KB SRAM and 256KB flash — more than Uno but still limited.",
			"No floating-point hardware — float operations are slow.",
			"SPI is on pins 50-53, NOT 11-13 like Uno. Code from Uno examples must be adapted.",
			"Pin 53 (SS) must be set as OUTPUT even if not used, or SPI will not work.",
			"analogWrite() is PWM, not true analog output. No DAC available.",
			"delay() blocks the entire MCU. Use millis() for non-blocking timing.",
			"No WiFi or Bluetooth. Use external modules if needed.",
		},
	})

	register(Board{
		Slug:         "rp2040",
		Name:         "Raspberry Pi Pico (RP2040)",
		FQBN:         "rp2040:rp2040:rpipico",
		Core:         "rp2040:rp2040",
		CoreURL:      "https://github.com/earlephilhower/arduino-pico/releases/download/global/package_rp2040_index.json",
		BaudRate:     115200,
		Capabilities: []string{"digital_io", "analog_input", "pwm", "i2c", "spi", "uart", "pio", "dual_core", "usb_native"},
		Pins: map[string]int{
			"onboard_led": 25,
			"i2c_sda":     4,
			"i2c_scl":     5,
			"spi_mosi":    19,
			"spi_miso":    16,
			"spi_sck":     18,
			"spi_ss":      17,
		},
		PinNotes: []string{
			"GPIO 25: Onboard LED",
			"ADC: GPIO 26-28 (12-bit) + GPIO 29 (VSYS/3 voltage monitor)",
			"All GPIO pins support PWM",
			"I2C0: SDA=4, SCL=5 | I2C1: SDA=6, SCL=7",
			"SPI0: MOSI=19, MISO=16, SCK=18, SS=17 | SPI1: MOSI=15, MISO=12, SCK=14, SS=13",
			"UART0: TX=0, RX=1 | UART1: TX=8, RX=9",
			"2 PIO (Programmable I/O) blocks for custom protocols",
		},
		Pitfalls: []string{
			"264KB SRAM and 2MB flash. Adequate for most projects but plan large buffers carefully.",
			"First upload requires BOOTSEL mode — hold BOOTSEL while plugging in USB.",
			"Pico W has LED on different pin (via CYW43 WiFi chip). This definition is for Pico (non-W).",
			"ADC has known offset error. Calibrate if precision is needed.",
			"USB Serial is separate from UART. Serial is USB, Serial1/Serial2 are UART.",
			"No EEPROM — use LittleFS for persistent storage.",
			"delay() only blocks the current core. Use millis() for non-blocking timing.",
			"Dual core: use setup1()/loop1() for second core tasks.",
		},
	})

	register(Board{
		Slug:         "teensy40",
		Name:         "Teensy 4.0",
		FQBN:         "teensy:avr:teensy40",
		Core:         "teensy:avr",
		CoreURL:      "https://www.pjrc.com/teensy/package_teensy_index.json",
		BaudRate:     115200,
		Capabilities: []string{"digital_io", "analog_input", "pwm", "i2c", "spi", "uart", "usb_native", "audio", "can_bus"},
		Pins: map[string]int{
			"onboard_led": 13,
			"i2c_sda":     18,
			"i2c_scl":     19,
			"spi_mosi":    11,
			"spi_miso":    12,
			"spi_sck":     13,
			"spi_ss":      10,
		},
		PinNotes: []string{
			"GPIO 13: Onboard LED",
			"14 ADC pins, 12-bit resolution",
			"PWM on many pins",
			"3 I2C buses",
			"2 SPI buses",
			"7 UART serial ports",
			"CAN bus support",
			"Native USB",
		},
		Pitfalls: []string{
			"Upload uses teensy_loader_cli, not standard serial upload.",
			"USB CDC — baud rate setting is ignored (always full USB speed).",
			"600MHz ARM Cortex-M7 runs hot. Consider heat management for sustained loads.",
			"1024KB flash, 512KB RAM — generous but not unlimited.",
			"No WiFi or Bluetooth. Use external modules if needed.",
			"Program button for bootloader mode.",
			"Use analogReadResolution(12) to get full 12-bit ADC resolution.",
			"Use elapsedMillis/elapsedMicros for non-blocking timing.",
		},
	})

	register(Board{
		Slug:         "teensy41",
		Name:         "Teensy 4.1",
		FQBN:         "teensy:avr:teensy41",
		Core:         "teensy:avr",
		CoreURL:      "https://www.pjrc.com/teensy/package_teensy_index.json",
		BaudRate:     115200,
		Capabilities: []string{"digital_io", "analog_input", "pwm", "i2c", "spi", "uart", "usb_native", "audio", "can_bus", "ethernet", "sd_card"},
		Pins: map[string]int{
			"onboard_led": 13,
			"i2c_sda":     18,
			"i2c_scl":     19,
			"spi_mosi":    11,
			"spi_miso":    12,
			"spi_sck":     13,
			"spi_ss":      10,
		},
		PinNotes: []string{
			"GPIO 13: Onboard LED",
			"18 ADC pins",
			"PWM on many pins",
			"3 I2C buses",
			"2 SPI buses",
			"8 UART serial ports",
			"Native Ethernet (requires MagJack soldering)",
			"SD card via SDIO (bottom side)",
			"USB host support",
			"Optional PSRAM (solder pads on bottom)",
		},
		Pitfalls: []string{
			"Upload uses teensy_loader_cli, not standard serial upload.",
			"USB CDC — baud rate setting is ignored (always full USB speed).",
			"Ethernet requires soldering a MagJack connector to the board.",
			"SD card slot is on the bottom — use BUILTIN_SDCARD constant.",
			"PSRAM uses EXTMEM keyword for allocation.",
			"8MB flash — much more than Teensy 4.0.",
			"Program button for bootloader mode.",
			"Use elapsedMillis/elapsedMicros for non-blocking timing.",
		},
	})

	register(Board{
		Slug:         "stm32-nucleo",
		Name:         "STM32 Nucleo-64",
		FQBN:         "STMicroelectronics:stm32:Nucleo_64",
		Core:         "STMicroelectronics:stm32",
		CoreURL:      "https://github.com/stm32duino/BoardManagerFiles/raw/main/package_stmicroelectronics_index.json",
		BaudRate:     115200,
		Capabilities: []string{"digital_io", "analog_input", "pwm", "i2c", "spi", "uart", "dac", "can_bus"},
		Pins: map[string]int{
			"onboard_led": 13,
			"i2c_sda":     14,
			"i2c_scl":     15,
			"spi_mosi":    11,
			"spi_miso":    12,
			"spi_sck":     13,
			"spi_ss":      10,
		},
		PinNotes: []string{
			"LD2 on PA5/D13",
			"B1 user button on PC13",
			"Arduino-compatible headers: D0-D15, A0-A5",
			"ADC: 12-bit resolution",
			"DAC available on some variants",
			"I2C: D14 (SDA), D15 (SCL)",
			"SPI: D11 (MOSI), D12 (MISO), D13 (SCK)",
			"UART via ST-Link Virtual COM Port (VCP)",
		},
		Pitfalls: []string{
			"Nucleo-64 is a family — many chip variants exist. Verify your specific board variant.",
			"Upload is via ST-Link, not USB serial. Install ST-Link drivers.",
			"Serial output is via ST-Link VCP, not native USB serial.",
			"Arduino pin mapping differs from STM32 native pin names (PA0, PB3, etc.).",
			"Library compatibility varies — not all Arduino libraries work with STM32.",
			"Flash and RAM sizes vary by chip variant.",
			"ST-Link drivers required on Windows.",
			"delay() blocks. Use millis() or HAL_GetTick() for non-blocking timing.",
		},
	})
}
